package vehicle

type Kind string

const (
	KindStandard Kind = "standard"
	KindLuxury   Kind = "luxury"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStandard, KindLuxury:
		return true
	default:
		return false
	}
}
