package collector

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dm/hubtrack/internal/client"
	"github.com/dm/hubtrack/internal/config"
	"github.com/dm/hubtrack/internal/format"
	"github.com/dm/hubtrack/internal/model"
	"github.com/dm/hubtrack/internal/store"
)

// Collector fetches one pull-count sample per configured repository and
// appends it to the table. Processing is strictly sequential and a failure
// for one repository never stops the rest of the batch.
type Collector struct {
	cfg    config.Config
	client client.HubClient
	store  *store.CSVStore
	out    io.Writer
	log    *logrus.Logger
	now    func() time.Time
}

// New creates a Collector writing console lines to out and failures to log.
func New(cfg config.Config, c client.HubClient, st *store.CSVStore, out io.Writer, log *logrus.Logger) *Collector {
	return &Collector{
		cfg:    cfg,
		client: c,
		store:  st,
		out:    out,
		log:    log,
		now:    time.Now,
	}
}

// Run processes the configured repositories in order: fetch, print, append.
// The sample timestamp is captured at record time, in UTC. Returns the number
// of samples recorded; fetch and append failures are logged and skipped.
func (c *Collector) Run(ctx context.Context) int {
	recorded := 0
	for _, repo := range c.cfg.Repositories {
		count, err := c.client.FetchPullCount(ctx, c.cfg.Namespace, repo)
		if err != nil {
			c.log.WithError(err).Errorf("Failed to fetch pull count for %s/%s", c.cfg.Namespace, repo)
			continue
		}

		fmt.Fprintf(c.out, "%s/%s: %s pulls\n", c.cfg.Namespace, repo, format.Number(count))

		sample := model.Sample{
			Timestamp:  c.now().UTC(),
			Namespace:  c.cfg.Namespace,
			Repository: repo,
			PullCount:  count,
		}
		if err := c.store.Append(sample); err != nil {
			c.log.WithError(err).Errorf("Failed to record sample for %s/%s", c.cfg.Namespace, repo)
			continue
		}
		recorded++
	}
	return recorded
}
