package main

import (
	"net/url"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	qrcode "github.com/skip2/go-qrcode"
)

// inviteLink is the deep link a member scans to join a group.
func inviteLink(sessionName string, g *flockv1.Group) string {
	q := url.Values{}
	q.Set("name", g.Name)
	q.Set("session", sessionName)
	return "flock://groups/" + url.PathEscape(g.ID) + "/join?" + q.Encode()
}

// renderQR draws link as a terminal QR code.
func renderQR(link string) (string, error) {
	qr, err := qrcode.New(link, qrcode.Low)
	if err != nil {
		return "", err
	}
	return qr.ToSmallString(false), nil
}
