package account

import (
	"fmt"
	"slices"
)

type HairStyle string

const (
	HairShort HairStyle = "short"
	HairLong  HairStyle = "long"
	HairCurly HairStyle = "curly"
	HairBald  HairStyle = "bald"
	HairAfro  HairStyle = "afro"
)

type Accessory string

const (
	AccessoryNone       Accessory = "none"
	AccessoryGlasses    Accessory = "glasses"
	AccessoryHeadphones Accessory = "headphones"
)

// HairStyles lists the valid hair styles.
var HairStyles = []HairStyle{HairShort, HairLong, HairCurly, HairBald, HairAfro}

// Accessories lists the valid accessories.
var Accessories = []Accessory{AccessoryNone, AccessoryGlasses, AccessoryHeadphones}

// AvatarConfig describes a user's avatar. Colors are CSS hex strings.
type AvatarConfig struct {
	SkinColor       string    `json:"skinColor"`
	HairColor       string    `json:"hairColor"`
	HairStyle       HairStyle `json:"hairStyle"`
	BackgroundColor string    `json:"backgroundColor"`
	ClothingColor   string    `json:"clothingColor"`
	Accessory       Accessory `json:"accessory"`
}

// DefaultAvatar returns the avatar assigned to new accounts.
func DefaultAvatar() AvatarConfig {
	return AvatarConfig{
		SkinColor:       "#f5d0b0",
		HairColor:       "#4a3b32",
		HairStyle:       HairShort,
		BackgroundColor: "#a86bf6",
		ClothingColor:   "#ffffff",
		Accessory:       AccessoryNone,
	}
}

// WithDefaults returns a copy of a with every empty field taken from
// DefaultAvatar.
func (a AvatarConfig) WithDefaults() AvatarConfig {
	d := DefaultAvatar()
	if a.SkinColor == "" {
		a.SkinColor = d.SkinColor
	}
	if a.HairColor == "" {
		a.HairColor = d.HairColor
	}
	if a.HairStyle == "" {
		a.HairStyle = d.HairStyle
	}
	if a.BackgroundColor == "" {
		a.BackgroundColor = d.BackgroundColor
	}
	if a.ClothingColor == "" {
		a.ClothingColor = d.ClothingColor
	}
	if a.Accessory == "" {
		a.Accessory = d.Accessory
	}
	return a
}

// Validate checks the enumerated fields.
func (a AvatarConfig) Validate() error {
	if a.HairStyle != "" && !slices.Contains(HairStyles, a.HairStyle) {
		return fmt.Errorf("%w: unknown hair style %q", ErrInvalidAvatar, a.HairStyle)
	}
	if a.Accessory != "" && !slices.Contains(Accessories, a.Accessory) {
		return fmt.Errorf("%w: unknown accessory %q", ErrInvalidAvatar, a.Accessory)
	}
	return nil
}
