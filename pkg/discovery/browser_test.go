package discovery_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dronecmd/dronecmd-go/pkg/discovery"
	"github.com/dronecmd/dronecmd-go/pkg/discovery/mocks"
)

func bebopEntry(addrs ...string) discovery.ServiceEntry {
	return discovery.ServiceEntry{
		Instance: "Bebop2-123456",
		Service:  discovery.ProductBebop2.ServiceType(),
		Domain:   discovery.Domain,
		Host:     "bebop2.local.",
		Port:     44444,
		Text:     []string{`{"device_id":"PI040339AA5L123456"}`},
		Addrs:    addrs,
	}
}

func receive(t *testing.T, ch <-chan *discovery.Service) *discovery.Service {
	t.Helper()
	select {
	case svc, ok := <-ch:
		require.True(t, ok, "channel closed")
		return svc
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for service")
		return nil
	}
}

func TestBrowser_Browse(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().
		Browse(mock.Anything, "_arsdk-090c._udp", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, added, removed chan<- discovery.ServiceEntry) error {
			added <- bebopEntry("192.168.42.1")
			added <- bebopEntry("fe80::1")
			removed <- bebopEntry("192.168.42.1")
			removed <- bebopEntry("fe80::1")
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := discovery.NewBrowserWithResolver(discovery.BrowserConfig{
		Products: []discovery.Product{discovery.ProductBebop2},
	}, resolver)
	added, removed, err := b.Browse(ctx)
	require.NoError(t, err)

	svc := receive(t, added)
	assert.Equal(t, "Bebop2-123456", svc.Instance)
	assert.Equal(t, discovery.ProductBebop2, svc.Product)
	assert.Equal(t, "PI040339AA5L123456", svc.DeviceID)
	assert.Equal(t, []string{"192.168.42.1"}, svc.Addresses)

	gone := receive(t, removed)
	assert.Equal(t, "Bebop2-123456", gone.Instance)
	assert.Empty(t, gone.Addresses)

	cancel()
	for range added {
	}
	for range removed {
	}
}

func TestBrowser_Find(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().
		Browse(mock.Anything, "_arsdk-0914._udp", mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, added, _ chan<- discovery.ServiceEntry) error {
			select {
			case added <- discovery.ServiceEntry{Instance: "Anafi-1", Addrs: []string{"192.168.53.1"}}:
			case <-ctx.Done():
			}
			return nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	b := discovery.NewBrowserWithResolver(discovery.BrowserConfig{
		Products: []discovery.Product{discovery.ProductAnafi4K},
	}, resolver)
	svc, err := b.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anafi-1", svc.Instance)
	assert.Equal(t, "192.168.53.1:44444", svc.Address())
}

func TestBrowser_FindTimeout(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.EXPECT().
		Browse(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("no multicast")).
		Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	b := discovery.NewBrowserWithResolver(discovery.BrowserConfig{
		Products: []discovery.Product{discovery.ProductDisco, discovery.ProductBebop},
	}, resolver)
	_, err := b.Find(ctx)
	assert.ErrorIs(t, err, discovery.ErrNotFound)
}

func TestDefaultBrowserConfig(t *testing.T) {
	cfg := discovery.DefaultBrowserConfig()
	assert.Equal(t, discovery.KnownProducts(), cfg.Products)
	assert.Empty(t, cfg.Interface)
}
