package discovery

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// ErrNotFound is returned by Find when the context ends before a device
// answers.
var ErrNotFound = errors.New("no device found")

// Resolver browses one DNS-SD service type, sending resolved entries on
// added and entries whose records expired on removed until ctx is done.
type Resolver interface {
	Browse(ctx context.Context, serviceType string, added, removed chan<- ServiceEntry) error
}

// BrowserConfig configures a Browser.
type BrowserConfig struct {
	// Interface restricts browsing to one network interface. Empty uses all.
	Interface string

	// Products to browse for. Empty means KnownProducts().
	Products []Product

	// Logger is used for operational logging. Nil discards.
	Logger *slog.Logger
}

// DefaultBrowserConfig returns a configuration browsing for every known
// product on all interfaces.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{Products: KnownProducts()}
}

// Browser discovers drones.
type Browser struct {
	config   BrowserConfig
	resolver Resolver
	logger   *slog.Logger
}

// NewBrowser creates a browser backed by mDNS.
func NewBrowser(config BrowserConfig) *Browser {
	return NewBrowserWithResolver(config, &MDNSResolver{Interface: config.Interface})
}

// NewBrowserWithResolver creates a browser backed by r.
func NewBrowserWithResolver(config BrowserConfig, r Resolver) *Browser {
	if len(config.Products) == 0 {
		config.Products = KnownProducts()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Browser{config: config, resolver: r, logger: logger}
}

type browseEvent struct {
	product Product
	entry   ServiceEntry
	removed bool
}

// Browse watches for devices until ctx is done. Entries seen on several
// interfaces are merged by instance name; a device is reported on removed
// once its last address disappears. Both channels are closed when
// browsing ends.
func (b *Browser) Browse(ctx context.Context) (added, removed <-chan *Service, err error) {
	addedCh := make(chan *Service)
	removedCh := make(chan *Service)
	events := make(chan browseEvent)

	var wg sync.WaitGroup
	for _, p := range b.config.Products {
		wg.Add(1)
		go func(p Product) {
			defer wg.Done()
			b.browseProduct(ctx, p, events)
		}(p)
	}
	go func() {
		wg.Wait()
		close(events)
	}()

	go func() {
		defer close(addedCh)
		defer close(removedCh)

		services := make(map[string]*Service)
		for ev := range events {
			if ev.removed {
				existing, ok := services[ev.entry.Instance]
				if !ok {
					continue
				}
				existing.Addresses = removeAddresses(existing.Addresses, ev.entry.Addrs)
				if len(existing.Addresses) > 0 {
					continue
				}
				delete(services, ev.entry.Instance)
				b.logger.Debug("device gone", "instance", existing.Instance)
				if !send(ctx, removedCh, existing) {
					drain(events)
					return
				}
				continue
			}

			svc := newService(ev.product, ev.entry)
			if existing, ok := services[svc.Instance]; ok {
				existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				continue
			}
			services[svc.Instance] = svc
			b.logger.Debug("device found", "instance", svc.Instance, "product", svc.Product.String(), "addresses", svc.Addresses)
			out := *svc
			out.Addresses = append([]string(nil), svc.Addresses...)
			if !send(ctx, addedCh, &out) {
				drain(events)
				return
			}
		}
	}()

	return addedCh, removedCh, nil
}

func (b *Browser) browseProduct(ctx context.Context, p Product, events chan<- browseEvent) {
	added := make(chan ServiceEntry)
	removed := make(chan ServiceEntry)

	go func() {
		if err := b.resolver.Browse(ctx, p.ServiceType(), added, removed); err != nil && ctx.Err() == nil {
			b.logger.Warn("browse failed", "service", p.ServiceType(), "error", err)
		}
	}()

	for {
		var ev browseEvent
		select {
		case e := <-added:
			ev = browseEvent{product: p, entry: e}
		case e := <-removed:
			ev = browseEvent{product: p, entry: e, removed: true}
		case <-ctx.Done():
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func send(ctx context.Context, ch chan<- *Service, svc *Service) bool {
	select {
	case ch <- svc:
		return true
	case <-ctx.Done():
		return false
	}
}

func drain(events <-chan browseEvent) {
	for range events {
	}
}

// Find browses until the first device answers or ctx is done.
func (b *Browser) Find(ctx context.Context) (*Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	added, _, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}
	select {
	case svc, ok := <-added:
		if ok {
			return svc, nil
		}
	case <-ctx.Done():
	}
	return nil, ErrNotFound
}

// MDNSResolver implements Resolver with multicast DNS.
type MDNSResolver struct {
	// Interface restricts queries to one interface. Empty uses all.
	Interface string
}

// Browse runs an mDNS browse for serviceType until ctx is done.
func (r *MDNSResolver) Browse(ctx context.Context, serviceType string, added, removed chan<- ServiceEntry) error {
	entries := make(chan *zeroconf.ServiceEntry)
	gone := make(chan *zeroconf.ServiceEntry)

	var opts []zeroconf.ClientOption
	if r.Interface != "" {
		iface, err := net.InterfaceByName(r.Interface)
		if err != nil {
			return err
		}
		opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- zeroconf.Browse(ctx, serviceType, Domain, entries, gone, opts...)
	}()

	for {
		select {
		case e, ok := <-entries:
			if !ok {
				entries = nil
				continue
			}
			if !forward(ctx, added, toServiceEntry(serviceType, e)) {
				return nil
			}
		case e, ok := <-gone:
			if !ok {
				gone = nil
				continue
			}
			if !forward(ctx, removed, toServiceEntry(serviceType, e)) {
				return nil
			}
		case err := <-errCh:
			if err != nil {
				return err
			}
			errCh = nil
		case <-ctx.Done():
			return nil
		}
	}
}

func forward(ctx context.Context, ch chan<- ServiceEntry, e ServiceEntry) bool {
	select {
	case ch <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func toServiceEntry(serviceType string, e *zeroconf.ServiceEntry) ServiceEntry {
	addrs := make([]string, 0, len(e.AddrIPv4)+len(e.AddrIPv6))
	for _, ip := range e.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range e.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return ServiceEntry{
		Instance: e.Instance,
		Service:  serviceType,
		Domain:   Domain,
		Host:     e.HostName,
		Port:     uint16(e.Port),
		Text:     e.Text,
		Addrs:    addrs,
	}
}

var _ Resolver = (*MDNSResolver)(nil)
