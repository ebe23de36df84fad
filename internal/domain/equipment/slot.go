package equipment

// Slot is one of the fixed attachment points on a character
type Slot string

const (
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotHead     Slot = "head"
	SlotBody     Slot = "body"
	SlotLegs     Slot = "legs"
	SlotHands    Slot = "hands"
	SlotFeet     Slot = "feet"
	SlotNecklace Slot = "necklace"
	SlotRing1    Slot = "ring_1"
	SlotRing2    Slot = "ring_2"
)

var allSlots = []Slot{
	SlotMainHand,
	SlotOffHand,
	SlotHead,
	SlotBody,
	SlotLegs,
	SlotHands,
	SlotFeet,
	SlotNecklace,
	SlotRing1,
	SlotRing2,
}

// AllSlots returns every slot in display order
func AllSlots() []Slot {
	out := make([]Slot, len(allSlots))
	copy(out, allSlots)
	return out
}

// IsValid reports whether s is one of the fixed slots
func (s Slot) IsValid() bool {
	for _, slot := range allSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// IsArmorSlot reports whether s holds armor pieces
func (s Slot) IsArmorSlot() bool {
	switch s {
	case SlotHead, SlotBody, SlotLegs, SlotHands, SlotFeet:
		return true
	}
	return false
}

// DisplayName returns a human readable slot label
func (s Slot) DisplayName() string {
	switch s {
	case SlotMainHand:
		return "Main Hand"
	case SlotOffHand:
		return "Off Hand"
	case SlotHead:
		return "Head"
	case SlotBody:
		return "Body"
	case SlotLegs:
		return "Legs"
	case SlotHands:
		return "Hands"
	case SlotFeet:
		return "Feet"
	case SlotNecklace:
		return "Necklace"
	case SlotRing1:
		return "Ring 1"
	case SlotRing2:
		return "Ring 2"
	default:
		return string(s)
	}
}
