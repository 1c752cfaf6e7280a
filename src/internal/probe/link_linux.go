//go:build linux

package probe

import (
	"net"

	"github.com/vishvananda/netlink"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
)

// NetlinkChecker reports a link as up when any non-loopback link is
// administratively up and its operational state is up or unknown. Some
// drivers never report an operational state, hence unknown.
type NetlinkChecker struct {
	listLinks func() ([]netlink.Link, error)
}

// NewSystemLinkChecker returns the netlink-based checker.
func NewSystemLinkChecker() LinkChecker {
	return &NetlinkChecker{listLinks: netlink.LinkList}
}

func (c *NetlinkChecker) IsLinkUp() (bool, error) {
	links, err := c.listLinks()
	if err != nil {
		return false, errors.NewInterfaceError("failed to list links", err)
	}
	return anyLinkUp(links), nil
}

func anyLinkUp(links []netlink.Link) bool {
	for _, link := range links {
		attrs := link.Attrs()
		if attrs.Flags&net.FlagLoopback != 0 || attrs.Flags&net.FlagUp == 0 {
			continue
		}
		if attrs.OperState == netlink.OperUp || attrs.OperState == netlink.OperUnknown {
			return true
		}
	}
	return false
}
