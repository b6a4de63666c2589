// internal/writer/types.go
package writer

import "github.com/tempwire/tempwire/internal/poller"

// Writer records samples somewhere durable.
type Writer interface {
	Append(s poller.Sample) error
}
