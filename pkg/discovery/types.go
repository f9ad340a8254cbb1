package discovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Service type constants.
const (
	// ServicePrefix starts every drone service type.
	ServicePrefix = "_arsdk-"

	// ServiceProto is the transport label of the service type.
	ServiceProto = "_udp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the handshake port most products advertise.
	DefaultPort = 44444
)

// ErrInvalidServiceType indicates a service type that is not _arsdk-XXXX._udp.
var ErrInvalidServiceType = errors.New("invalid service type")

// Product identifies a drone product family.
type Product uint16

// Known products.
const (
	ProductBebop        Product = 0x0901
	ProductJumpingSumo  Product = 0x0902
	ProductBebop2       Product = 0x090c
	ProductDisco        Product = 0x090e
	ProductAnafi4K      Product = 0x0914
	ProductAnafiThermal Product = 0x0919
)

var productNames = map[Product]string{
	ProductBebop:        "Bebop",
	ProductJumpingSumo:  "Jumping Sumo",
	ProductBebop2:       "Bebop 2",
	ProductDisco:        "Disco",
	ProductAnafi4K:      "Anafi 4K",
	ProductAnafiThermal: "Anafi Thermal",
}

// KnownProducts returns every product with a name, in id order.
func KnownProducts() []Product {
	return []Product{
		ProductBebop,
		ProductJumpingSumo,
		ProductBebop2,
		ProductDisco,
		ProductAnafi4K,
		ProductAnafiThermal,
	}
}

// String returns the product name, or its hex id when unknown.
func (p Product) String() string {
	if name, ok := productNames[p]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(p))
}

// Known reports whether p is a named product.
func (p Product) Known() bool {
	_, ok := productNames[p]
	return ok
}

// ServiceType returns the DNS-SD service type of p.
func (p Product) ServiceType() string {
	return fmt.Sprintf("%s%04x.%s", ServicePrefix, uint16(p), ServiceProto)
}

// ParseServiceType extracts the product from a service type such as
// "_arsdk-090c._udp". A trailing domain is accepted.
func ParseServiceType(s string) (Product, error) {
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimSuffix(s, "."+Domain)
	rest, ok := strings.CutPrefix(s, ServicePrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidServiceType, s)
	}
	hex, proto, ok := strings.Cut(rest, ".")
	if !ok || proto != ServiceProto || len(hex) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidServiceType, s)
	}
	id, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidServiceType, s)
	}
	return Product(id), nil
}

// Service is a discovered drone.
type Service struct {
	// Instance is the DNS-SD instance name, usually the device name.
	Instance string

	Host      string
	Port      uint16
	Addresses []string

	Product Product

	// DeviceID is the serial number from the TXT record, if published.
	DeviceID string
}

// Address returns the first address joined with the port, or "" when the
// service has no address.
func (s *Service) Address() string {
	if len(s.Addresses) == 0 {
		return ""
	}
	addr := s.Addresses[0]
	if strings.Contains(addr, ":") {
		addr = "[" + addr + "]"
	}
	return addr + ":" + strconv.Itoa(int(s.Port))
}

// ServiceEntry is a resolved DNS-SD record, independent of the mDNS library.
type ServiceEntry struct {
	Instance string
	Service  string
	Domain   string
	Host     string
	Port     uint16
	Text     []string
	Addrs    []string
}

// txtRecord is the JSON object devices publish in their TXT record.
type txtRecord struct {
	DeviceID string `json:"device_id"`
}

// parseTXT returns the device id from TXT strings. Some firmwares publish
// plain key=value pairs instead of JSON; both are accepted.
func parseTXT(text []string) string {
	for _, t := range text {
		t = strings.TrimSpace(t)
		if strings.HasPrefix(t, "{") {
			var rec txtRecord
			if json.Unmarshal([]byte(t), &rec) == nil && rec.DeviceID != "" {
				return rec.DeviceID
			}
			continue
		}
		if v, ok := strings.CutPrefix(t, "device_id="); ok {
			return v
		}
	}
	return ""
}

// newService converts an entry found while browsing for product.
func newService(product Product, e ServiceEntry) *Service {
	port := e.Port
	if port == 0 {
		port = DefaultPort
	}
	return &Service{
		Instance:  e.Instance,
		Host:      e.Host,
		Port:      port,
		Addresses: append([]string(nil), e.Addrs...),
		Product:   product,
		DeviceID:  parseTXT(e.Text),
	}
}

func mergeAddresses(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range added {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

func removeAddresses(addresses, gone []string) []string {
	drop := make(map[string]bool, len(gone))
	for _, addr := range gone {
		drop[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !drop[addr] {
			result = append(result, addr)
		}
	}
	return result
}
