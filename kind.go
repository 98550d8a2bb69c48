package repr

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is the rendering category of a value.
type Kind int

const (
	KindContainer Kind = iota
	KindComposite
	KindHandle
	KindText
	KindFloat
	KindOther
)
