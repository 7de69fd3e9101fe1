package signals

import "weak"

type owner interface {
	disconnect(l *linkBase, priority int) bool
}

// disconnector lets a Connection reach the signal that issued it without
// keeping that signal alive. Close detaches it from its owner.
type disconnector struct {
	owner owner
}

func (d *disconnector) disconnect(l *linkBase, priority int) bool {
	if d.owner == nil {
		return false
	}
	return d.owner.disconnect(l, priority)
}

// Connection is returned by Connect and identifies one connected callback.
// The zero Connection is not connected to anything.
type Connection struct {
	disc     weak.Pointer[disconnector]
	link     *linkBase
	priority int
}

func newConnection(d *disconnector, l *linkBase, priority int) Connection {
	return Connection{
		disc:     weak.Make(d),
		link:     l,
		priority: priority,
	}
}

func (c *Connection) disconnector() *disconnector {
	d := c.disc.Value()
	if d == nil || d.owner == nil {
		return nil
	}
	return d
}

// Disconnect removes the callback from its signal. It reports whether a
// callback was removed: false if this Connection already disconnected, or
// the signal was closed or collected.
func (c *Connection) Disconnect() bool {
	d := c.disconnector()
	if d == nil {
		return false
	}
	l := c.link
	if l == nil {
		return false
	}
	c.link = nil
	return d.disconnect(l, c.priority)
}

// IsConnected reports whether the signal still exists and this Connection
// has not disconnected. It does not notice a disconnect made through a copy.
func (c Connection) IsConnected() bool {
	return c.link != nil && c.disconnector() != nil
}

// Enable lets the callback take part in emissions again.
func (c Connection) Enable() {
	if c.link != nil {
		c.link.enable()
	}
}

// Disable skips the callback during emissions without disconnecting it.
func (c Connection) Disable() {
	if c.link != nil {
		c.link.disable()
	}
}

func (c Connection) IsEnabled() bool {
	return c.link != nil && c.link.isEnabled()
}

// Priority returns the priority group the callback was connected to.
func (c Connection) Priority() int {
	return c.priority
}

// Move hands the connection over to the returned value and leaves c empty.
func (c *Connection) Move() Connection {
	moved := *c
	*c = Connection{}
	return moved
}

// ScopedConnection disconnects its Connection when closed. Pair it with
// defer to tie a subscription to a function scope.
type ScopedConnection struct {
	conn Connection
}

func Scoped(c Connection) *ScopedConnection {
	return &ScopedConnection{conn: c}
}

// Reset disconnects the current connection and takes ownership of c.
func (s *ScopedConnection) Reset(c Connection) {
	s.conn.Disconnect()
	s.conn = c
}

// Release gives up ownership without disconnecting.
func (s *ScopedConnection) Release() Connection {
	return s.conn.Move()
}

func (s *ScopedConnection) Connection() Connection {
	return s.conn
}

func (s *ScopedConnection) IsConnected() bool {
	return s.conn.IsConnected()
}

// Close disconnects. It is safe to call more than once and always returns nil.
func (s *ScopedConnection) Close() error {
	s.conn.Disconnect()
	return nil
}

// ConnectionList collects connections so they can be torn down together.
type ConnectionList struct {
	conns []Connection
}

func (l *ConnectionList) Add(c Connection) {
	l.conns = append(l.conns, c)
}

func (l *ConnectionList) Len() int {
	return len(l.conns)
}

// Clear disconnects every connection and empties the list.
func (l *ConnectionList) Clear() {
	for i := range l.conns {
		l.conns[i].Disconnect()
	}
	clear(l.conns)
	l.conns = l.conns[:0]
}

// Close is Clear for use with defer and io.Closer.
func (l *ConnectionList) Close() error {
	l.Clear()
	return nil
}
