package logging

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(l *Logger, e entry)
}

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e entry) {
	e[f.Key] = l.toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(l *Logger, e entry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

// LazyDetail is only evaluated when the entry is actually logged.
// Use it for details that take effort to calculate.
type LazyDetail func() Detail

func (df LazyDetail) addTo(l *Logger, e entry) {
	if df == nil {
		return
	}
	d := df()
	if d == nil {
		return
	}
	d.addTo(l, e)
}

func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func (l *Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		e := entry{}
		val.addTo(l, e)
		return map[string]any(e)
	case []Detail:
		e := entry{}
		for _, d := range val {
			d.addTo(l, e)
		}
		return map[string]any(e)
	case error:
		return val.Error()
	default:
		return val
	}
}

type entry map[string]any

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, entry) {}
