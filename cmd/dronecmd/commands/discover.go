package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/discovery"
)

// RunDiscover browses for drones for the given duration and prints each
// device as it appears. It returns the devices found.
func RunDiscover(ctx context.Context, b *discovery.Browser, timeout time.Duration, w io.Writer) ([]*discovery.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	added, removed, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	var found []*discovery.Service
	for added != nil || removed != nil {
		select {
		case svc, ok := <-added:
			if !ok {
				added = nil
				continue
			}
			found = append(found, svc)
			formatService(w, svc)
		case svc, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			fmt.Fprintf(w, "- %s gone\n", svc.Instance)
		}
	}

	if len(found) == 0 {
		fmt.Fprintln(w, "No devices found.")
	}
	return found, nil
}

func formatService(w io.Writer, svc *discovery.Service) {
	fmt.Fprintf(w, "+ %s (%s)\n", svc.Instance, svc.Product)
	if addr := svc.Address(); addr != "" {
		fmt.Fprintf(w, "    Address: %s\n", addr)
	}
	if len(svc.Addresses) > 1 {
		fmt.Fprintf(w, "    Also:    %s\n", strings.Join(svc.Addresses[1:], ", "))
	}
	if svc.DeviceID != "" {
		fmt.Fprintf(w, "    Serial:  %s\n", svc.DeviceID)
	}
}
