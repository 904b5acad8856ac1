// Package fetch executes a download plan: one job at a time, streamed to
// disk, with progress reporting and completed-download bookkeeping.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cavaliergopher/grab/v3"
	"github.com/pterm/pterm"

	"github.com/vmunix/nexusdl/internal/history"
	"github.com/vmunix/nexusdl/internal/plan"
)

//go:generate mockgen -destination=mocks/resolver.go -package=mocks . LinkResolver

// LinkResolver exchanges a job's identifier triple for a temporary
// download URL.
type LinkResolver interface {
	DownloadLink(ctx context.Context, domain string, modID, fileID int) (string, error)
}

// History records completed downloads. *history.Store satisfies it.
type History interface {
	Has(domain string, modID, fileID int) (bool, error)
	Add(r *history.Record) error
}

// Result is the outcome of one job.
type Result struct {
	Job     plan.Job
	Path    string
	Size    int64
	Skipped bool
	Err     error
}

// Runner downloads jobs sequentially. Transfers are not resumed and not
// parallelized; a failed job does not stop the rest of the plan.
type Runner struct {
	resolver LinkResolver
	history  History
	dir      string
	force    bool
	progress bool
	logger   *slog.Logger
	grab     *grab.Client
}

// Option configures a Runner.
type Option func(*Runner)

// WithHistory enables completed-download bookkeeping and skip-if-present.
func WithHistory(h History) Option {
	return func(r *Runner) { r.history = h }
}

// WithForce re-downloads files even when history says they are present.
func WithForce(force bool) Option {
	return func(r *Runner) { r.force = force }
}

// WithProgress renders a terminal progress bar per transfer.
func WithProgress(progress bool) Option {
	return func(r *Runner) { r.progress = progress }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithUserAgent sets the User-Agent for file transfers.
func WithUserAgent(ua string) Option {
	return func(r *Runner) { r.grab.UserAgent = ua }
}

// NewRunner creates a runner that saves files under dir.
func NewRunner(resolver LinkResolver, dir string, opts ...Option) *Runner {
	r := &Runner{
		resolver: resolver,
		dir:      dir,
		logger:   slog.Default(),
		grab:     grab.NewClient(),
	}
	r.grab.UserAgent = "nexusdl"
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes the jobs in order and returns one result per job.
func (r *Runner) Run(ctx context.Context, jobs []plan.Job) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			results = append(results, Result{Job: job, Err: ctx.Err()})
			continue
		}
		results = append(results, r.fetchOne(ctx, job))
	}
	return results
}

func (r *Runner) fetchOne(ctx context.Context, job plan.Job) Result {
	res := Result{Job: job}
	dest := filepath.Join(r.dir, job.FileName)

	if r.history != nil && !r.force {
		done, err := r.history.Has(job.Domain, job.ModID, job.FileID)
		if err != nil {
			r.logger.Warn("history lookup failed", "file", job.FileName, "error", err)
		} else if done {
			if _, statErr := os.Stat(dest); statErr == nil {
				res.Path = dest
				res.Skipped = true
				return res
			}
		}
	}

	url, err := r.resolver.DownloadLink(ctx, job.Domain, job.ModID, job.FileID)
	if err != nil {
		res.Err = err
		return res
	}

	req, err := grab.NewRequest(dest, url)
	if err != nil {
		res.Err = fmt.Errorf("build download request: %w", err)
		return res
	}
	req.NoResume = true
	req = req.WithContext(ctx)

	resp := r.grab.Do(req)
	if r.progress {
		r.track(resp, job)
	} else {
		<-resp.Done
	}

	if err := resp.Err(); err != nil {
		// Leave no partial file behind.
		_ = os.Remove(resp.Filename)
		res.Err = fmt.Errorf("download %s: %w", job.Name, err)
		return res
	}

	res.Path = resp.Filename
	res.Size = resp.BytesComplete()

	if r.history != nil {
		rec := &history.Record{
			Domain:    job.Domain,
			ModID:     job.ModID,
			FileID:    job.FileID,
			FileName:  job.FileName,
			SizeBytes: res.Size,
		}
		if err := r.history.Add(rec); err != nil {
			r.logger.Warn("recording download failed", "file", job.FileName, "error", err)
		}
	}
	return res
}

// track drives a progress bar off the in-flight transfer. Unknown sizes get
// no bar; the transfer still runs to completion.
func (r *Runner) track(resp *grab.Response, job plan.Job) {
	total := int(resp.Size())
	if total <= 0 {
		<-resp.Done
		return
	}

	bar, err := pterm.DefaultProgressbar.WithTotal(total).WithTitle(job.FileName).Start()
	if err != nil {
		<-resp.Done
		return
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			bar.Add(int(resp.BytesComplete()) - bar.Current)
		case <-resp.Done:
			bar.Add(int(resp.BytesComplete()) - bar.Current)
			_, _ = bar.Stop()
			return
		}
	}
}
