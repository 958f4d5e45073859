package effect

import "time"

// Effect IDs
const (
	Grond           ID = "grond"
	Isengard        ID = "isengard"
	Precious        ID = "precious"
	Mellon          ID = "mellon"
	HelmsDeep       ID = "helms-deep"
	SauronPulse     ID = "sauron-pulse"
	Nice            ID = "nice"
	SauronMode      ID = "sauron-mode"
	Horn            ID = "horn"
	Summon          ID = "summon"
	Party           ID = "party"
	Frenzy          ID = "frenzy"
	Isildur         ID = "isildur"
	SecondBreakfast ID = "second-breakfast"
	Potatoes        ID = "potatoes"
	ShallNotPass    ID = "shall-not-pass"
	Meat            ID = "meat"
)

// Visual state names interpreted by the renderer
const (
	ClassScreenShake    = "screen-shake"
	ClassIsengardBounce = "isengard-bounce"
	ClassGollumGlow     = "gollum-glow"
	ClassPreciousGlow   = "precious-glow"
	ClassMellonReveal   = "mellon-reveal"
	ClassHelmsDeep      = "helms-deep"
	ClassSauronPulse    = "sauron-pulse"
	ClassSauronMode     = "sauron-mode"
	ClassHornBlast      = "horn-blast"
	ClassParty          = "party"
	ClassBloodFrenzy    = "blood-frenzy"
	ClassIsildur        = "isildur-flash"
	ClassStaffSlam      = "staff-slam"
)

// Spawn groups
const (
	GroupGrond     = "grond"
	GroupConfetti  = "confetti"
	GroupBreakfast = "breakfast"
	GroupPotatoes  = "potatoes"
)

// Sound names understood by the audio package
const (
	SoundDrum  = "drum"
	SoundHorn  = "horn"
	SoundPing  = "ping"
	SoundParty = "party"
	SoundBuzz  = "buzz"
)

// Focal animations driven by the ambient driver
const (
	AnimPossessedSpin = "possessed-spin"
	AnimUrukRage      = "uruk-rage"
	AnimSpiritFloat   = "spirit-float"
)

// Catalog returns the built-in effect definitions
func Catalog() []Definition {
	ms := time.Millisecond
	return []Definition{
		{
			ID:   Grond,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassScreenShake)),
				Now(Spawn(GroupGrond, "GROND!", 20)),
				Now(Sound(SoundDrum)),
			},
			Duration: 3000 * ms,
		},
		{
			ID:   Isengard,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Focal, ClassIsengardBounce)),
				Now(Message("They're taking the hobbits to Isengard!")),
			},
			Duration: 5000 * ms,
		},
		{
			ID:   Precious,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Focal, ClassGollumGlow)),
				Now(Message("My precious...")),
			},
			Duration: 5000 * ms,
		},
		{
			ID:   Mellon,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassMellonReveal)),
				Now(Message("Speak friend and enter...")),
			},
			Duration: 4000 * ms,
		},
		{
			ID:   HelmsDeep,
			Kind: KindToggle,
			Steps: []Step{
				Now(AddClass(Body, ClassHelmsDeep)),
				Now(Message("HELM'S DEEP MODE ACTIVATED!")),
			},
			Off: []Step{
				Now(Message("Returning to normal...")),
			},
		},
		{
			ID:   SauronPulse,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassSauronPulse)),
				Now(Sound(SoundPing)),
			},
			Duration: 1000 * ms,
		},
		{
			ID:    Nice,
			Kind:  KindTimed,
			Steps: []Step{Now(Quote("Nice."))},
		},
		{
			ID:   SauronMode,
			Kind: KindLatch,
			Steps: []Step{
				Now(AddClass(Body, ClassSauronMode)),
				Now(Quote("THE EYE OF SAURON SEES ALL")),
				Now(Animate(AnimPossessedSpin)),
			},
		},
		{
			ID:   Horn,
			Kind: KindTimed,
			Steps: []Step{
				Now(Quote("The Horn of Helm Hammerhand shall sound in the deep!")),
				Now(AddClass(Body, ClassHornBlast)),
				Now(Sound(SoundHorn)),
			},
			Duration: 1500 * ms,
		},
		{
			ID:   Summon,
			Kind: KindTimed,
			Steps: []Step{
				Now(Quote("An Uruk-hai approaches...")),
				Now(Animate(AnimUrukRage)),
			},
		},
		{
			ID:   Party,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassParty)),
				Now(Message("MAXIMUM PARTY!")),
				Now(LoopSound(SoundParty)),
				Now(Burst(GroupConfetti, "*", 8, 250*ms)),
				Now(Animate(AnimPossessedSpin)),
				At(5000*ms, Animate(AnimSpiritFloat)),
				At(9000*ms, Message("The party must end. For now.")),
			},
			Duration: 10000 * ms,
		},
		{
			ID:   Frenzy,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassBloodFrenzy)),
				Now(Message("BLOODLUST! The orc head hungers!")),
				Now(Animate(AnimUrukRage)),
				Now(Sound(SoundBuzz)),
			},
			Duration: 2000 * ms,
		},
		{
			ID:   Isildur,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Body, ClassIsildur)),
				Now(Message("ISILDUR! Press again to cast it into the fire.")),
			},
			Duration: 3000 * ms,
		},
		{
			ID:   SecondBreakfast,
			Kind: KindTimed,
			Steps: []Step{
				Now(Quote("What about second breakfast?")),
				Now(Spawn(GroupBreakfast, "(_)>", 8)),
			},
			Duration: 3000 * ms,
		},
		{
			ID:   Potatoes,
			Kind: KindTimed,
			Steps: []Step{
				Now(Quote("PO-TA-TOES! Boil 'em, mash 'em, stick 'em in a stew!")),
				Now(Spawn(GroupPotatoes, "o", 15)),
			},
			Duration: 3000 * ms,
		},
		{
			ID:   ShallNotPass,
			Kind: KindTimed,
			Steps: []Step{
				Now(AddClass(Focal, ClassStaffSlam)),
				Now(Message("YOU SHALL NOT PASS!")),
				Now(Sound(SoundDrum)),
			},
			Duration: 2500 * ms,
		},
		{
			ID:   Meat,
			Kind: KindTimed,
			Steps: []Step{
				Now(Quote("LOOKS LIKE MEAT'S BACK ON THE MENU, BOYS!")),
				Now(Animate(AnimUrukRage)),
			},
		},
	}
}

// DefaultRegistry builds the registry over Catalog
func DefaultRegistry() *Registry {
	r, err := NewRegistry(Catalog()...)
	if err != nil {
		panic(err)
	}
	return r
}
