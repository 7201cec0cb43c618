package transport

import (
	"context"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
)

// NullSender stands in for the host when the panel runs offline. It only
// logs what would have been sent.
type NullSender struct {
	log *logger.Logger
}

func NewNullSender(log *logger.Logger) *NullSender {
	if log == nil {
		log = logger.Nop()
	}
	return &NullSender{log: log.With("transport")}
}

func (s *NullSender) Send(_ context.Context, out bridge.Outbound) error {
	if _, err := bridge.Encode(out); err != nil {
		return err
	}
	s.log.Info("no host attached, dropping message", "kind", out.Kind.String())
	return nil
}
