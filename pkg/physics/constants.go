package physics

// Constants tunes every force in the simulator. The zero value is not useful;
// start from [DefaultConstants] and override fields.
//
// Field tags match the [physics] table of the configuration file.
type Constants struct {
	// TimeStep is the fixed Euler step. Faster playback repeats sub-steps
	// instead of growing this.
	TimeStep float64 `toml:"time_step"`

	Spring      float64 `toml:"spring"`
	SpringClamp float64 `toml:"spring_clamp"` // fraction of current length, 0 disables

	InflateRepel    float64 `toml:"inflate_repel"`
	InflateExponent float64 `toml:"inflate_exponent"`
	InflateMax      float64 `toml:"inflate_max"`

	StretchRepel    float64 `toml:"stretch_repel"`
	StretchExponent float64 `toml:"stretch_exponent"`
	StretchMax      float64 `toml:"stretch_max"`

	Gravity         float64 `toml:"gravity"`
	GravityExponent float64 `toml:"gravity_exponent"`
	GravityMax      float64 `toml:"gravity_max"`

	HoleGravity         float64 `toml:"hole_gravity"`
	HoleGravityExponent float64 `toml:"hole_gravity_exponent"`
	HoleGravityMax      float64 `toml:"hole_gravity_max"`

	Center float64 `toml:"center"`
	Radial float64 `toml:"radial"`
}

// DefaultConstants returns the tuning used when nothing is configured.
func DefaultConstants() Constants {
	return Constants{
		TimeStep: 0.01,

		Spring:      200,
		SpringClamp: 0,

		InflateRepel:    50,
		InflateExponent: 2,
		InflateMax:      100,

		StretchRepel:    20,
		StretchExponent: 1,
		StretchMax:      50,

		Gravity:         100,
		GravityExponent: 0,
		GravityMax:      100,

		HoleGravity:         20,
		HoleGravityExponent: 0,
		HoleGravityMax:      20,

		Center: 100,
		Radial: 10,
	}
}
