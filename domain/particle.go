package domain

import (
	"io"

	"github.com/SubZeroLabs/MinecraftTypes/codec"
	"github.com/SubZeroLabs/MinecraftTypes/internal/errs"
	"github.com/SubZeroLabs/MinecraftTypes/wire"
)

// ParticleKind indexes the 89 particle variants; six carry a payload.
type ParticleKind int32

const (
	ParticleAmbientEntityEffect ParticleKind = iota
	ParticleAngryVillager
	ParticleBarrier
	ParticleLight
	ParticleBlock
	ParticleBubble
	ParticleCloud
	ParticleCrit
	ParticleDamageIndicator
	ParticleDragonBreath
	ParticleDrippingLava
	ParticleFallingLava
	ParticleLandingLava
	ParticleDrippingWater
	ParticleFallingWater
	ParticleDust
	ParticleDustColorTransition
	ParticleEffect
	ParticleElderGuardian
	ParticleEnchantedHit
	ParticleEnchant
	ParticleEndRod
	ParticleEntityEffect
	ParticleExplosionEmitter
	ParticleExplosion
	ParticleFallingDust
	ParticleFirework
	ParticleFishing
	ParticleFlame
	ParticleSoulFireFlame
	ParticleSoul
	ParticleFlash
	ParticleHappyVillager
	ParticleComposter
	ParticleHeart
	ParticleInstantEffect
	ParticleItem
	ParticleVibration
	ParticleItemSlime
	ParticleItemSnowball
	ParticleLargeSmoke
	ParticleLava
	ParticleMycelium
	ParticleNote
	ParticlePoof
	ParticlePortal
	ParticleRain
	ParticleSmoke
	ParticleSneeze
	ParticleSpit
	ParticleSquidInk
	ParticleSweepAttack
	ParticleTotemOfUndying
	ParticleUnderwater
	ParticleSplash
	ParticleWitch
	ParticleBubblePop
	ParticleCurrentDown
	ParticleBubbleColumnUp
	ParticleNautilus
	ParticleDolphin
	ParticleCampfireCosySmoke
	ParticleCampfireSignalSmoke
	ParticleDrippingHoney
	ParticleFallingHoney
	ParticleLandingHoney
	ParticleFallingNectar
	ParticleFallingSporeBlossom
	ParticleAsh
	ParticleCrimsonSpore
	ParticleWarpedSpore
	ParticleSporeBlossomAir
	ParticleDrippingObsidianTear
	ParticleFallingObsidianTear
	ParticleLandingObsidianTear
	ParticleReversePortal
	ParticleWhiteAsh
	ParticleSmallFlame
	ParticleSnowflake
	ParticleDrippingDripstoneLava
	ParticleFallingDripstoneLava
	ParticleDrippingDripstoneWater
	ParticleFallingDripstoneWater
	ParticleGlowSquidInk
	ParticleGlow
	ParticleWaxOn
	ParticleWaxOff
	ParticleElectricSpark
	ParticleScrape

	particleVariantCount
)

// DustParticleData is the payload of the Dust particle variant.
type DustParticleData struct {
	Red, Green, Blue, Scale float32
}

func (d *DustParticleData) Decode(r io.Reader) (err error) {
	if d.Red, err = wire.ReadF32(r); err != nil {
		return err
	}
	if d.Green, err = wire.ReadF32(r); err != nil {
		return err
	}
	if d.Blue, err = wire.ReadF32(r); err != nil {
		return err
	}
	d.Scale, err = wire.ReadF32(r)
	return err
}

func (d DustParticleData) Encode(w io.Writer) error {
	for _, v := range []float32{d.Red, d.Green, d.Blue, d.Scale} {
		if err := wire.WriteF32(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (d DustParticleData) Size() (wire.VarInt, error) { return 16, nil }

// DustColorTransitionParticleData is the payload of the
// DustColorTransition particle variant.
type DustColorTransitionParticleData struct {
	FromRed, FromGreen, FromBlue float32
	Scale                        float32
	ToRed, ToGreen, ToBlue       float32
}

func (d *DustColorTransitionParticleData) Decode(r io.Reader) (err error) {
	fields := []*float32{&d.FromRed, &d.FromGreen, &d.FromBlue, &d.Scale, &d.ToRed, &d.ToGreen, &d.ToBlue}
	for _, f := range fields {
		if *f, err = wire.ReadF32(r); err != nil {
			return err
		}
	}
	return nil
}

func (d DustColorTransitionParticleData) Encode(w io.Writer) error {
	for _, v := range []float32{d.FromRed, d.FromGreen, d.FromBlue, d.Scale, d.ToRed, d.ToGreen, d.ToBlue} {
		if err := wire.WriteF32(w, v); err != nil {
			return err
		}
	}
	return nil
}

func (d DustColorTransitionParticleData) Size() (wire.VarInt, error) { return 28, nil }

// FallingDustParticleData is the payload of the FallingDust variant.
type FallingDustParticleData struct {
	BlockState wire.VarInt
}

func (f *FallingDustParticleData) Decode(r io.Reader) error { return f.BlockState.Decode(r) }
func (f FallingDustParticleData) Encode(w io.Writer) error  { return f.BlockState.Encode(w) }
func (f FallingDustParticleData) Size() (wire.VarInt, error) { return f.BlockState.Size() }

// VibrationParticleData is the payload of the Vibration variant.
type VibrationParticleData struct {
	OriginX, OriginY, OriginZ float64
	DestX, DestY, DestZ       float64
	Ticks                     int32
}

func (v *VibrationParticleData) Decode(r io.Reader) (err error) {
	fields := []*float64{&v.OriginX, &v.OriginY, &v.OriginZ, &v.DestX, &v.DestY, &v.DestZ}
	for _, f := range fields {
		if *f, err = wire.ReadF64(r); err != nil {
			return err
		}
	}
	v.Ticks, err = wire.ReadI32(r)
	return err
}

func (v VibrationParticleData) Encode(w io.Writer) error {
	for _, f := range []float64{v.OriginX, v.OriginY, v.OriginZ, v.DestX, v.DestY, v.DestZ} {
		if err := wire.WriteF64(w, f); err != nil {
			return err
		}
	}
	return wire.WriteI32(w, v.Ticks)
}

func (v VibrationParticleData) Size() (wire.VarInt, error) { return 52, nil }

// Particle wraps a ParticleKind discriminant plus, for the six variants
// that carry one, a typed payload. Exactly one of the payload fields is
// populated, selected by Kind; the rest are left at their zero value.
type Particle struct {
	Kind ParticleKind

	Block               wire.VarInt
	Dust                DustParticleData
	DustColorTransition DustColorTransitionParticleData
	FallingDust         FallingDustParticleData
	Item                ItemParticleData
	Vibration           VibrationParticleData
}

// ItemParticleData is the payload of the Item particle variant.
type ItemParticleData struct {
	Item Slot
}

func (i *ItemParticleData) Decode(r io.Reader) error { return i.Item.Decode(r) }
func (i ItemParticleData) Encode(w io.Writer) error  { return i.Item.Encode(w) }
func (i ItemParticleData) Size() (wire.VarInt, error) { return i.Item.Size() }

func (p *Particle) Decode(r io.Reader) error {
	return codec.DecodeDiscriminant(r, func(idx int) error {
		if idx < 0 || idx >= int(particleVariantCount) {
			return errs.ErrUnknownDiscriminant
		}

		p.Kind = ParticleKind(idx)

		switch p.Kind {
		case ParticleBlock:
			return p.Block.Decode(r)
		case ParticleDust:
			return p.Dust.Decode(r)
		case ParticleDustColorTransition:
			return p.DustColorTransition.Decode(r)
		case ParticleFallingDust:
			return p.FallingDust.Decode(r)
		case ParticleItem:
			return p.Item.Decode(r)
		case ParticleVibration:
			return p.Vibration.Decode(r)
		default:
			return nil
		}
	})
}

func (p Particle) Encode(w io.Writer) error {
	return codec.EncodeDiscriminant(w, int(p.Kind), func() error {
		switch p.Kind {
		case ParticleBlock:
			return p.Block.Encode(w)
		case ParticleDust:
			return p.Dust.Encode(w)
		case ParticleDustColorTransition:
			return p.DustColorTransition.Encode(w)
		case ParticleFallingDust:
			return p.FallingDust.Encode(w)
		case ParticleItem:
			return p.Item.Encode(w)
		case ParticleVibration:
			return p.Vibration.Encode(w)
		default:
			return nil
		}
	})
}

func (p Particle) Size() (wire.VarInt, error) {
	return codec.SizeDiscriminant(int(p.Kind), func() (wire.VarInt, error) {
		switch p.Kind {
		case ParticleBlock:
			return p.Block.Size()
		case ParticleDust:
			return p.Dust.Size()
		case ParticleDustColorTransition:
			return p.DustColorTransition.Size()
		case ParticleFallingDust:
			return p.FallingDust.Size()
		case ParticleItem:
			return p.Item.Size()
		case ParticleVibration:
			return p.Vibration.Size()
		default:
			return 0, nil
		}
	})
}
