// Package camera holds the first-person camera state and its per-tick physics.
//
// Screen Y grows downward, so the ground is at Y = 0 and "up" is negative Y.
package camera

import (
	"math"

	"wireframe/internal/mathutil"
	"wireframe/internal/transform"
)

// State is the camera snapshot threaded through each frame.
type State struct {
	Pos   mathutil.Vec3
	Vel   mathutil.Vec3
	Yaw   float64 // degrees
	Pitch float64 // degrees
}

// Start is the camera placed 100 units in front of the demo cuboid.
func Start() State {
	return State{Pos: mathutil.Vec3{0, 0, -100}}
}

// Input is the polled keyboard and mouse state for one tick.
type Input struct {
	Forward, Back, Left, Right bool
	Jump                       bool
	MouseDX, MouseDY           float64
}

// Controls are the movement constants. Gravity and damping are applied per
// tick, not per second.
type Controls struct {
	Speed        float64 // units/s added to velocity while a move key is held
	Damping      float64 // horizontal velocity multiplier per tick
	Gravity      float64 // added to Y velocity per tick
	JumpVelocity float64
	PitchLimit   float64 // degrees
	Sensitivity  float64 // degrees per mouse pixel
}

// DefaultControls returns the stock movement tuning.
func DefaultControls() Controls {
	return Controls{
		Speed:        500,
		Damping:      0.8,
		Gravity:      5,
		JumpVelocity: -100,
		PitchLimit:   85,
		Sensitivity:  1,
	}
}

// Step advances s by one tick of length dt seconds and returns the new state.
func (c Controls) Step(s State, in Input, dt float64) State {
	speed := c.Speed * dt
	yaw := mathutil.Deg2Rad(s.Yaw)
	fwdX, fwdZ := math.Sin(yaw), -math.Cos(yaw)
	rightX, rightZ := math.Cos(yaw), math.Sin(yaw)

	// The world is drawn translated by -Pos, so key directions are mirrored
	// relative to the camera basis.
	if in.Back {
		s.Vel[0] += fwdX * speed
		s.Vel[2] += fwdZ * speed
	}
	if in.Forward {
		s.Vel[0] -= fwdX * speed
		s.Vel[2] -= fwdZ * speed
	}
	if in.Left {
		s.Vel[0] += rightX * speed
		s.Vel[2] += rightZ * speed
	}
	if in.Right {
		s.Vel[0] -= rightX * speed
		s.Vel[2] -= rightZ * speed
	}
	s.Vel[0] *= c.Damping
	s.Vel[2] *= c.Damping

	s.Vel[1] += c.Gravity
	s.Pos = s.Pos.Add(s.Vel.Scale(dt))

	if s.Pos[1] > 0 {
		s.Pos[1] = 0
		s.Vel[1] = 0
	}
	if in.Jump && s.Vel[1] == 0 {
		s.Vel[1] = c.JumpVelocity
	}

	s.Pitch += in.MouseDY * c.Sensitivity
	s.Yaw += in.MouseDX * c.Sensitivity
	s.Pitch = math.Max(-c.PitchLimit, math.Min(c.PitchLimit, s.Pitch))

	return s
}

// View moves a world-space mesh into camera space: translate by -Pos, then
// yaw and pitch about the camera.
func View(m transform.Mesh, s State) transform.Mesh {
	m = transform.Translate(m, -s.Pos[0], -s.Pos[1], -s.Pos[2])
	m = transform.RotateRelativeToCameraY(m, s.Yaw)
	return transform.RotateRelativeToCameraX(m, s.Pitch)
}
