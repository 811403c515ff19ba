package notification

// Override is an optional per-job value that replaces a global default.
// The zero value is unset.
type Override struct {
	value string
	set   bool
}

// NewOverride treats an empty string as "no override".
func NewOverride(value string) Override {
	if value == "" {
		return Override{}
	}
	return Override{value: value, set: true}
}

func (o Override) IsSet() bool { return o.set }

func (o Override) Value() (string, bool) {
	return o.value, o.set
}

// Or returns the override when set, otherwise fallback.
func (o Override) Or(fallback string) string {
	if o.set {
		return o.value
	}
	return fallback
}

func (o Override) String() string {
	return o.value
}
