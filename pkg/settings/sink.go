package settings

import (
	"fmt"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// Sink feeds setting notifications into an Aggregate. It is installed as the
// dispatcher's settings sink.
type Sink struct {
	Aggregate *Aggregate

	// ProtocolLogger receives a SettingEvent per update. Optional.
	ProtocolLogger log.Logger
	SessionID      string

	// OnUpdate, if set, is called after each applied notification.
	OnUpdate func(Field)
}

// OnCommand applies cmd to the aggregate.
func (s *Sink) OnCommand(cmd *wire.Command) error {
	if cmd.Descriptor == nil || cmd.Descriptor.Setting == nil {
		return fmt.Errorf("command %s is not a setting notification", cmd.Name())
	}
	f, err := s.Aggregate.Apply(cmd.Descriptor.Setting, cmd)
	if err != nil {
		return err
	}

	if s.ProtocolLogger != nil {
		ev := &log.SettingEvent{Name: f.Name, Current: f.Current.String(), Count: f.Count}
		if f.Range != nil {
			lo, hi := f.Range.Min.String(), f.Range.Max.String()
			ev.Min, ev.Max = &lo, &hi
		}
		s.ProtocolLogger.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: s.SessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerSettings,
			Category:  log.CategorySetting,
			Setting:   ev,
		})
	}
	if s.OnUpdate != nil {
		s.OnUpdate(f)
	}
	return nil
}
