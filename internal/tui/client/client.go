package client

import (
	"fmt"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps the gRPC connection to the daemon with one typed client per
// service.
type Client struct {
	conn     *grpc.ClientConn
	Session  flockv1.SessionServiceClient
	Chat     flockv1.ChatServiceClient
	Message  flockv1.MessageServiceClient
	Prayer   flockv1.PrayerServiceClient
	Note     flockv1.NoteServiceClient
	Library  flockv1.LibraryServiceClient
	Shepherd flockv1.ShepherdServiceClient
}

// New dials the daemon's Unix domain socket. Every call uses the json codec
// the daemon registers.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(flockv1.CallOption()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:     conn,
		Session:  flockv1.NewSessionServiceClient(conn),
		Chat:     flockv1.NewChatServiceClient(conn),
		Message:  flockv1.NewMessageServiceClient(conn),
		Prayer:   flockv1.NewPrayerServiceClient(conn),
		Note:     flockv1.NewNoteServiceClient(conn),
		Library:  flockv1.NewLibraryServiceClient(conn),
		Shepherd: flockv1.NewShepherdServiceClient(conn),
	}, nil
}

// Conn exposes the underlying connection, e.g. for health probes.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
