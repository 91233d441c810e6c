// Package config loads solver cases from INI files and service settings from
// the environment.
//
// A case file looks like:
//
//	[wing]
//	span           = 10
//	root_chord     = 2
//	tip_chord      = 1
//	sweep_deg      = 0
//	symmetric      = true
//	reference_area = 15
//
//	[segment.root]
//	span_fraction       = 0
//	root_chord_fraction = 1
//
//	[segment.tip]
//	span_fraction       = 1
//	root_chord_fraction = 0.5
//
//	[propeller.left]
//	x = -1.5
//	y = 2
//	radius = 0.8
//	thrust = 2000
//
//	[flow]
//	angle_of_attack_deg = 5
//	velocity            = 60
//
//	[solver]
//	panels = 50
//
//	[sweep]
//	angles_deg = -2, 3, 8
//	machs      = 0.3, 0.7, 0.85
//
// Segment sections are taken in file order. Angles are degrees on disk and
// radians in memory.
package config
