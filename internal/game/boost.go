package game

// Boost is a depletable speed-boost resource. It drains while active and
// refills (slower) while idle; running dry forces the boost off.
type Boost struct {
	amount float64
	active bool
}

func NewBoost() *Boost {
	return &Boost{amount: BoostMax}
}

// Start activates the boost. Denied when the tank is empty.
func (b *Boost) Start() {
	if b.amount > 0 {
		b.active = true
	}
}

func (b *Boost) Stop() {
	b.active = false
}

func (b *Boost) Active() bool {
	return b.active
}

func (b *Boost) Amount() float64 {
	return b.amount
}

func (b *Boost) Max() float64 {
	return BoostMax
}

func (b *Boost) Fraction() float64 {
	return b.amount / BoostMax
}

// Update drains or refills the tank. Hitting empty clears the active
// flag so the motion controller stops applying the boost multiplier.
// Near-zero counts as empty: draining BoostMax seconds of fixed steps
// leaves a few ulps in the tank, and that residue must not keep the
// boost alive an extra tick.
func (b *Boost) Update(dt float64) {
	if b.active {
		b.amount -= BoostDrain * dt
		if b.amount <= TimeEpsilon {
			b.amount = 0
			b.active = false
		}
		return
	}
	if b.amount < BoostMax {
		b.amount += BoostRefill * dt
		if b.amount > BoostMax {
			b.amount = BoostMax
		}
	}
}
