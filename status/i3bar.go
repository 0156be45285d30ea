package status

import (
	"encoding/json"
)

// I3BarHeader is the json header used for i3bar output.
type I3BarHeader struct {
	Version     int  `json:"version"`
	StopSignal  int  `json:"stop_signal,omitempty"`
	ContSignal  int  `json:"cont_signal,omitempty"`
	ClickEvents bool `json:"click_events,omitempty"`
}

type i3Bar struct {
	header      I3BarHeader
	out         BarWriter
	wroteHeader bool
}

// NewI3Bar creates a Bar which outputs in the i3bar protocol.
func NewI3Bar(header I3BarHeader, out BarWriter) Bar {
	return &i3Bar{header: header, out: out}
}

func (w *i3Bar) writeHeader() error {
	bytes := make([]byte, 0)

	header, err := json.Marshal(w.header)
	if err != nil {
		return err
	}
	bytes = append(bytes, header...)
	bytes = append(bytes, []byte{'\n', '[', '\n', '[', ']', '\n'}...)
	if _, err := w.out.Write(bytes); err != nil {
		return err
	}
	w.wroteHeader = true
	return nil
}

func (w *i3Bar) Write(v []Element) error {
	bytes := make([]byte, 0)

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if !w.wroteHeader {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}

	bytes = append(bytes, ',')
	bytes = append(bytes, data...)
	bytes = append(bytes, '\n')

	if _, err := w.out.Write(bytes); err != nil {
		return err
	}
	return w.out.Flush()
}
