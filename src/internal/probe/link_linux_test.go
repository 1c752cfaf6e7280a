//go:build linux

package probe

import (
	"errors"
	"net"
	"testing"

	"github.com/vishvananda/netlink"
)

func dummy(name string, flags net.Flags, state netlink.LinkOperState) netlink.Link {
	return &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: name, Flags: flags, OperState: state}}
}

func TestNetlinkChecker(t *testing.T) {
	tests := []struct {
		name  string
		links []netlink.Link
		want  bool
	}{
		{
			name:  "loopback only",
			links: []netlink.Link{dummy("lo", net.FlagUp|net.FlagLoopback, netlink.OperUnknown)},
			want:  false,
		},
		{
			name:  "wifi up",
			links: []netlink.Link{dummy("lo", net.FlagUp|net.FlagLoopback, netlink.OperUnknown), dummy("wlan0", net.FlagUp, netlink.OperUp)},
			want:  true,
		},
		{
			name:  "admin up, carrier down",
			links: []netlink.Link{dummy("wlan0", net.FlagUp, netlink.OperDown)},
			want:  false,
		},
		{
			name:  "admin down",
			links: []netlink.Link{dummy("eth0", 0, netlink.OperUp)},
			want:  false,
		},
		{
			name:  "driver without oper state",
			links: []netlink.Link{dummy("tun0", net.FlagUp, netlink.OperUnknown)},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &NetlinkChecker{listLinks: func() ([]netlink.Link, error) { return tt.links, nil }}
			up, err := checker.IsLinkUp()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if up != tt.want {
				t.Errorf("IsLinkUp() = %t, want %t", up, tt.want)
			}
		})
	}
}

func TestNetlinkChecker_Error(t *testing.T) {
	checker := &NetlinkChecker{listLinks: func() ([]netlink.Link, error) { return nil, errors.New("permission denied") }}
	if up, err := checker.IsLinkUp(); up || err == nil {
		t.Errorf("Expected an error, got %t (%v)", up, err)
	}
}
