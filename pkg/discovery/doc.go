// Package discovery finds drones on the local network over mDNS/DNS-SD.
//
// Each product family advertises its own service type, _arsdk-XXXX._udp,
// where XXXX is the product id in lowercase hex (090c for Bebop 2). The
// TXT record carries a small JSON object with the device serial:
//
//	{"device_id":"PI040339AA5L123456"}
//
// The advertised port is the connection handshake port of the device.
//
// Use Browser.Browse to watch devices appear and disappear, or Browser.Find
// to wait for the first one.
package discovery
