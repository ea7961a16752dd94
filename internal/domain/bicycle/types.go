package bicycle

type Condition string

const (
	ConditionExcellent    Condition = "excellent"
	ConditionGood         Condition = "good"
	ConditionSatisfactory Condition = "satisfactory"
)

func (c Condition) String() string {
	return string(c)
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionSatisfactory:
		return true
	default:
		return false
	}
}

func NewCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", ErrInvalidCondition
	}
	return c, nil
}

// Kind is the rider category of a bicycle.
type Kind string

const (
	KindAdult  Kind = "adult"
	KindJunior Kind = "junior"
	KindKids   Kind = "kids"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindAdult, KindJunior, KindKids:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type FrameType string

const (
	FrameUrban    FrameType = "urban"
	FrameMountain FrameType = "mountain"
	FrameRoad     FrameType = "road"
	FrameTouring  FrameType = "touring"
)

func (f FrameType) String() string {
	return string(f)
}

func (f FrameType) IsValid() bool {
	switch f {
	case FrameUrban, FrameMountain, FrameRoad, FrameTouring:
		return true
	default:
		return false
	}
}

func NewFrameType(s string) (FrameType, error) {
	f := FrameType(s)
	if !f.IsValid() {
		return "", ErrInvalidFrameType
	}
	return f, nil
}
