package wheel

const (
	// DefaultTotalSectors is the number of hue sectors on the ring.
	DefaultTotalSectors = 360

	// DefaultStartAngle and DefaultEndAngle bound the thumb arc in degrees.
	DefaultStartAngle = 90
	DefaultEndAngle   = 270

	// DefaultHeadSize is the diameter of the filled circle drawn at the end
	// of the thumb arc. Half of it is added to the sector offset.
	DefaultHeadSize = 20

	// DefaultDeadZoneRadius rejects gestures that start too close to the
	// center of the ring.
	DefaultDeadZoneRadius = 100

	// Thumb stroke ramp. Each sector of the arc is drawn slightly thicker
	// than the previous one until thumbMaxThickness is reached.
	thumbInitialThickness = 0.02
	thumbThicknessStep    = 0.02
	thumbMaxThickness     = 3.0

	// ringInsetFactor multiplied by the ring thickness is subtracted from the
	// half width to get the ring radius.
	ringInsetFactor = 3
)
