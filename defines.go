package switchboard

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// constants for the switch grammar
const (
	ShortPrefix       = "-"
	LongPrefix        = "--"
	EndOfSwitches     = "--"
	LongValueSplitter = "="
)

// BooleanValue is the value recorded for a switch that takes no
// argument, once per time it is seen.
const BooleanValue = "true"

// constants for struct binding tags
const (
	SwitchTagName         = "switch"
	LeftoversTagModifier  = "leftovers"
	SwitchTagKVDelimiter  = ","
	SwitchTagIgnoreMarker = "-"
)

// reflect.TypeOf constants for type checks
var (
	UUIDType        = reflect.TypeOf(uuid.UUID{})
	TimeType        = reflect.TypeOf(time.Time{})
	DurationType    = reflect.TypeOf(time.Duration(0))
	StringSliceType = reflect.TypeOf([]string{})
)
