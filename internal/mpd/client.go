// Package mpd is the music server client. It converts protocol records into
// library types and serializes access to one connection.
package mpd

import (
	"errors"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/fhs/gompd/v2/mpd"
	"go.uber.org/zap"

	"github.com/MoreDelay/inori/internal/library"
)

// ErrNotConnected is returned after Close.
var ErrNotConnected = errors.New("not connected to music server")

// Options configures the connection.
type Options struct {
	Host     string
	Port     int
	Password string
	// Timeout bounds the initial dial; zero means no limit.
	Timeout time.Duration
}

// Addr returns host:port.
func (o Options) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

// Client is safe for concurrent use; requests are serialized.
type Client struct {
	opts   Options
	logger *zap.Logger

	mu     sync.Mutex
	conn   *mpd.Client
	closed bool
}

// New creates a client. The connection is opened on first use.
func New(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{opts: opts, logger: logger}
}

// Connect opens the connection now instead of on first use.
func (c *Client) Connect() error {
	return c.do(func(*mpd.Client) error { return nil })
}

// Close closes the connection. Later calls return ErrNotConnected.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) dial() (*mpd.Client, error) {
	addr := c.opts.Addr()
	type result struct {
		conn *mpd.Client
		err  error
	}
	done := make(chan result, 1)
	go func() {
		var r result
		if c.opts.Password != "" {
			r.conn, r.err = mpd.DialAuthenticated("tcp", addr, c.opts.Password)
		} else {
			r.conn, r.err = mpd.Dial("tcp", addr)
		}
		done <- r
	}()

	if c.opts.Timeout <= 0 {
		r := <-done
		return r.conn, r.err
	}
	select {
	case r := <-done:
		return r.conn, r.err
	case <-time.After(c.opts.Timeout):
		go func() {
			if r := <-done; r.conn != nil {
				_ = r.conn.Close()
			}
		}()
		return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errTimeout}
	}
}

var errTimeout = errors.New("timed out")

// do runs fn on the connection, dialing if needed. A failed request is
// retried once on a fresh connection, since the server drops idle clients.
func (c *Client) do(fn func(*mpd.Client) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrNotConnected
	}

	for attempt := 0; ; attempt++ {
		if c.conn == nil {
			conn, err := c.dial()
			if err != nil {
				return err
			}
			c.logger.Info("connected", zap.String("addr", c.opts.Addr()))
			c.conn = conn
		}

		err := fn(c.conn)
		if err == nil || attempt > 0 || !isConnError(err) {
			return err
		}
		c.logger.Warn("connection lost, reconnecting", zap.Error(err))
		_ = c.conn.Close()
		c.conn = nil
	}
}

// isConnError reports whether err came from the transport rather than
// from the server rejecting a command.
func isConnError(err error) bool {
	var mpdErr mpd.Error
	return !errors.As(err, &mpdErr)
}

// Artists lists album artists with their sort names.
func (c *Client) Artists() ([]library.ArtistInfo, error) {
	var infos []library.ArtistInfo
	err := c.do(func(conn *mpd.Client) error {
		list, err := conn.Command("list albumartistsort group albumartist").AttrsList("AlbumArtist")
		if err != nil {
			return err
		}
		infos = parseArtists(list)
		return nil
	})
	return infos, err
}

// Albums lists one album artist's albums with their tracks.
func (c *Client) Albums(artist string) ([]library.AlbumInfo, error) {
	var albums []library.AlbumInfo
	err := c.do(func(conn *mpd.Client) error {
		list, err := conn.Find("albumartist", artist)
		if err != nil {
			return err
		}
		albums = groupAlbums(parseSongs(list))
		return nil
	})
	return albums, err
}

// Queue returns the play queue in order.
func (c *Client) Queue() ([]library.Song, error) {
	var songs []library.Song
	err := c.do(func(conn *mpd.Client) error {
		list, err := conn.PlaylistInfo(-1, -1)
		if err != nil {
			return err
		}
		songs = parseSongs(list)
		return nil
	})
	return songs, err
}

// Status returns the player status and current song.
func (c *Client) Status() (Status, error) {
	var st Status
	err := c.do(func(conn *mpd.Client) error {
		attrs, err := conn.Status()
		if err != nil {
			return err
		}
		current, err := conn.CurrentSong()
		if err != nil {
			return err
		}
		st = parseStatus(attrs, current)
		return nil
	})
	return st, err
}

// Add appends songs to the queue in one command list.
func (c *Client) Add(songs []library.Song) error {
	if len(songs) == 0 {
		return nil
	}
	return c.do(func(conn *mpd.Client) error {
		cl := conn.BeginCommandList()
		for _, s := range songs {
			cl.Add(s.File)
		}
		return cl.End()
	})
}

// PlayID starts the queue entry with the given id.
func (c *Client) PlayID(id int) error {
	return c.do(func(conn *mpd.Client) error { return conn.PlayID(id) })
}

// DeleteID removes the queue entry with the given id.
func (c *Client) DeleteID(id int) error {
	return c.do(func(conn *mpd.Client) error { return conn.DeleteID(id) })
}

// Clear empties the queue.
func (c *Client) Clear() error {
	return c.do(func(conn *mpd.Client) error { return conn.Clear() })
}

// TogglePause pauses when playing and resumes otherwise.
func (c *Client) TogglePause(st Status) error {
	return c.do(func(conn *mpd.Client) error {
		if st.State == Stopped {
			return conn.Play(-1)
		}
		return conn.Pause(st.State == Playing)
	})
}

// Flag is a toggleable playback option.
type Flag int

const (
	FlagRepeat Flag = iota
	FlagRandom
	FlagSingle
	FlagConsume
)

func (f Flag) String() string {
	switch f {
	case FlagRandom:
		return "random"
	case FlagSingle:
		return "single"
	case FlagConsume:
		return "consume"
	default:
		return "repeat"
	}
}

// Toggle flips one playback option relative to st.
func (c *Client) Toggle(f Flag, st Status) error {
	return c.do(func(conn *mpd.Client) error {
		switch f {
		case FlagRandom:
			return conn.Random(!st.Random)
		case FlagSingle:
			return conn.Single(!st.Single)
		case FlagConsume:
			return conn.Consume(!st.Consume)
		default:
			return conn.Repeat(!st.Repeat)
		}
	})
}
