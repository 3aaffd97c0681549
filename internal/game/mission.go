package game

import "github.com/go-gl/mathgl/mgl64"

// MissionState is the delivery loop: drive to the pickup, then carry the
// package to the dropoff.
type MissionState int

const (
	MissionAwaitingPickup MissionState = iota
	MissionCarrying
)

// MissionEvent reports what happened during an update so the caller can
// wire sound and HUD feedback without the mission knowing about either.
type MissionEvent int

const (
	MissionNone MissionEvent = iota
	MissionPickedUp
	MissionDelivered
)

// Mission runs the delivery mini-game over a world's slot list.
type Mission struct {
	State   MissionState
	Pickup  mgl64.Vec3
	Dropoff mgl64.Vec3

	Deliveries int
	Score      int
	TimeLeft   float64 // bonus countdown while carrying

	slots []mgl64.Vec3
	rng   *Rand
}

func NewMission(slots []mgl64.Vec3, seed uint64) *Mission {
	m := &Mission{
		slots: slots,
		rng:   NewRand(seed ^ 0xDE11BEE5),
	}
	m.Pickup = m.pickSlot(mgl64.Vec3{})
	return m
}

// pickSlot returns a random slot different from avoid.
func (m *Mission) pickSlot(avoid mgl64.Vec3) mgl64.Vec3 {
	if len(m.slots) == 0 {
		return mgl64.Vec3{}
	}
	for i := 0; i < 8; i++ {
		s := m.slots[m.rng.Intn(len(m.slots))]
		if s.Sub(avoid).Len() > PickupRadius*2 {
			return s
		}
	}
	return m.slots[m.rng.Intn(len(m.slots))]
}

// Target returns the marker the player should drive to right now.
func (m *Mission) Target() mgl64.Vec3 {
	if m.State == MissionCarrying {
		return m.Dropoff
	}
	return m.Pickup
}

// Update advances the mission from the vehicle's current position.
// Radius checks only; the vehicle never needs to stop.
func (m *Mission) Update(dt float64, pos mgl64.Vec3) MissionEvent {
	if m.State == MissionCarrying && m.TimeLeft > 0 {
		m.TimeLeft -= dt
		if m.TimeLeft < 0 {
			m.TimeLeft = 0
		}
	}

	if !m.inRange(pos, m.Target()) {
		return MissionNone
	}

	switch m.State {
	case MissionAwaitingPickup:
		m.State = MissionCarrying
		m.TimeLeft = DeliveryTime
		m.Dropoff = m.pickSlot(m.Pickup)
		return MissionPickedUp

	case MissionCarrying:
		m.State = MissionAwaitingPickup
		m.Deliveries++
		m.Score += DeliveryBonus + int(m.TimeLeft)*TimeBonusRate
		m.Pickup = m.pickSlot(m.Dropoff)
		return MissionDelivered
	}
	return MissionNone
}

// inRange compares planar distance only; package handoff ignores height.
func (m *Mission) inRange(pos, target mgl64.Vec3) bool {
	dx := pos.X() - target.X()
	dz := pos.Z() - target.Z()
	return dx*dx+dz*dz <= PickupRadius*PickupRadius
}
