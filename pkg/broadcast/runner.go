package broadcast

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/broadcast/pkg/mailer"
	"github.com/dmitrymomot/broadcast/pkg/roster"
)

// State identifies a step of the broadcast flow.
type State string

const (
	StateIdle          State = "idle"
	StateHealthChecked State = "health_checked"
	StateLoaded        State = "loaded"
	StateValidated     State = "validated"
	StatePreviewed     State = "previewed"
	StateConfirmed     State = "confirmed"
	StateSending       State = "sending"
	StateCompleted     State = "completed"
	StateFailed        State = "failed"
)

// previewCount is how many recipients are shown before confirmation.
const previewCount = 5

// bodyTerminator ends multi-line body input.
const bodyTerminator = "END"

// Params carries pre-supplied answers for a run. Zero-value fields are
// collected from the InputSource instead, so a fully-populated Params plus
// AutoConfirm makes a run non-interactive.
type Params struct {
	FilePath    string          // recipient file; prompted when empty
	Kind        roster.Kind     // recipient file kind; detected from FilePath when empty
	Message     *mailer.Message // message template; composed via prompts when nil
	ReportPath  string          // write the report here; prompted when empty
	AutoConfirm bool            // skip confirmations and the report prompt
}

// Result is the record of a finished run.
type Result struct {
	RunID    uuid.UUID
	Outcomes []Outcome
	Summary  Summary
	Dropped  int // rows excluded by validation
}

// Runner drives a broadcast end to end. It is single-threaded by design:
// the gateway's rate tolerance, not throughput, is the binding constraint.
type Runner struct {
	sender mailer.Sender
	health mailer.HealthChecker
	input  InputSource
	out    io.Writer
	log    *slog.Logger
	config Config
	mailer mailer.Config
	state  State
}

// Option configures optional runner collaborators.
type Option func(*Runner)

// WithLogger sets the logger for run progress.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOutput sets the writer for operator-facing text (preview, summary).
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithMailerConfig sets the placeholder token and sender-name fallback.
func WithMailerConfig(cfg mailer.Config) Option {
	return func(r *Runner) {
		r.mailer = cfg
	}
}

// NewRunner creates a Runner with the given collaborators.
func NewRunner(sender mailer.Sender, health mailer.HealthChecker, input InputSource, cfg Config, opts ...Option) *Runner {
	r := &Runner{
		sender: sender,
		health: health,
		input:  input,
		out:    os.Stdout,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: cfg,
		mailer: mailer.Config{
			PlaceholderToken: "{nama}",
			FallbackFromName: "Broadcast System",
		},
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current flow state.
func (r *Runner) State() State {
	return r.state
}

// Run executes one broadcast. It returns ErrAborted when the operator
// declines a confirmation, the underlying load/validation/health error for
// pre-send failures, and a Result once the sending loop has started.
func (r *Runner) Run(ctx context.Context, p Params) (*Result, error) {
	res := &Result{RunID: uuid.New()}
	log := r.log.With(slog.String("run_id", res.RunID.String()))

	// Health gate before anything else: no send may happen against a
	// gateway that did not answer the pre-flight check, unless the
	// operator explicitly waived it.
	health, err := r.health.CheckHealth(ctx)
	switch {
	case err != nil && !r.config.SkipHealthCheck:
		return nil, r.fail(log, err)
	case err != nil:
		log.Warn("health check failed, continuing anyway", slog.String("error", err.Error()))
		fmt.Fprintf(r.out, "Warning: health check failed (%v), continuing\n", err)
	default:
		log.Info("gateway healthy",
			slog.String("version", health.Version),
			slog.String("services", health.Services))
		fmt.Fprintf(r.out, "Gateway healthy (version %s, services %s)\n", health.Version, health.Services)
	}
	r.transition(log, StateHealthChecked)

	rows, err := r.load(p)
	if err != nil {
		return nil, r.fail(log, err)
	}
	r.transition(log, StateLoaded)

	recipients, dropped := roster.Validate(rows)
	res.Dropped = dropped
	if dropped > 0 {
		fmt.Fprintf(r.out, "Dropped %d invalid row(s)\n", dropped)
	}
	if len(recipients) == 0 {
		return nil, r.fail(log, roster.ErrNoValidRecipients)
	}
	log.Info("recipients validated",
		slog.Int("valid", len(recipients)),
		slog.Int("dropped", dropped))
	r.transition(log, StateValidated)

	r.preview(recipients)
	r.transition(log, StatePreviewed)

	if !p.AutoConfirm {
		ok, err := r.input.Confirm(fmt.Sprintf("Proceed with %d recipient(s)? (y/n): ", len(recipients)))
		if err != nil {
			return nil, r.fail(log, err)
		}
		if !ok {
			return nil, r.fail(log, ErrAborted)
		}
	}
	r.transition(log, StateConfirmed)

	msg := p.Message
	if msg == nil {
		msg, err = r.compose()
		if err != nil {
			return nil, r.fail(log, err)
		}
	}
	if msg.FromName == "" {
		msg.FromName = r.mailer.FallbackFromName
	}
	if err := msg.Validate(); err != nil {
		return nil, r.fail(log, err)
	}

	if !p.AutoConfirm {
		ok, err := r.input.Confirm("Start sending now? (y/n): ")
		if err != nil {
			return nil, r.fail(log, err)
		}
		if !ok {
			return nil, r.fail(log, ErrAborted)
		}
	}

	r.transition(log, StateSending)
	res.Outcomes = make([]Outcome, 0, len(recipients))
	for i, rc := range recipients {
		email := msg.Personalize(r.mailer.PlaceholderToken, rc.Name, rc.Email)

		id, err := r.sender.Send(ctx, email)
		outcome := Outcome{Recipient: rc, Timestamp: time.Now()}
		if err != nil {
			outcome.ErrorMessage = err.Error()
			log.Warn("send failed",
				slog.String("email", rc.Email),
				slog.String("error", err.Error()))
			fmt.Fprintf(r.out, "[%d/%d] %s ... failed: %v\n", i+1, len(recipients), mailer.Recipient(rc.Name, rc.Email), err)
		} else {
			outcome.Success = true
			outcome.MessageID = id
			log.Info("sent",
				slog.String("email", rc.Email),
				slog.String("message_id", id))
			fmt.Fprintf(r.out, "[%d/%d] %s ... sent\n", i+1, len(recipients), mailer.Recipient(rc.Name, rc.Email))
		}
		res.Outcomes = append(res.Outcomes, outcome)

		if i < len(recipients)-1 && r.config.Delay > 0 {
			if err := sleep(ctx, r.config.Delay); err != nil {
				res.Summary = Summarize(res.Outcomes)
				return res, r.fail(log, err)
			}
		}
	}
	r.transition(log, StateCompleted)

	res.Summary = Summarize(res.Outcomes)
	r.summarize(res.Summary)
	log.Info("broadcast completed",
		slog.Int("sent", res.Summary.Sent),
		slog.Int("failed", res.Summary.Failed))

	if path, err := r.reportPath(p); err == nil && path != "" {
		if err := WriteReport(res.Outcomes, path); err != nil {
			// The deliveries already happened; a lost report does not undo them.
			log.Error("report not saved", slog.String("error", err.Error()))
			fmt.Fprintf(r.out, "Report not saved: %v\n", err)
		} else {
			fmt.Fprintf(r.out, "Report saved to %s\n", path)
		}
	}

	return res, nil
}

// load resolves the recipient file path and kind, prompting when not
// supplied, and reads the raw rows.
func (r *Runner) load(p Params) ([]roster.Row, error) {
	path, kind := p.FilePath, p.Kind

	if path == "" {
		answer, err := r.input.Line("Recipient file kind (csv/xlsx): ")
		if err != nil {
			return nil, err
		}
		kind, err = roster.ParseKind(answer)
		if err != nil {
			return nil, err
		}
		path, err = r.input.Line("Recipient file path: ")
		if err != nil {
			return nil, err
		}
	}
	if kind == "" {
		kind = roster.DetectKind(path)
	}
	return roster.Load(path, kind)
}

// preview surfaces the first recipients for operator inspection.
func (r *Runner) preview(recipients []roster.Recipient) {
	n := min(previewCount, len(recipients))
	fmt.Fprintf(r.out, "Preview of the first %d recipient(s):\n", n)
	for i, rc := range recipients[:n] {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, mailer.Recipient(rc.Name, rc.Email))
	}
	fmt.Fprintf(r.out, "%d recipient(s) ready\n", len(recipients))
}

// compose collects the message template from the operator.
func (r *Runner) compose() (*mailer.Message, error) {
	from, err := r.input.Line("Sender name: ")
	if err != nil {
		return nil, err
	}
	subject, err := r.input.Line(fmt.Sprintf("Subject (use %s for the recipient name): ", r.mailer.PlaceholderToken))
	if err != nil {
		return nil, err
	}
	text, err := r.input.Multiline(
		fmt.Sprintf("Plain text body (use %s for the recipient name, finish with %s):", r.mailer.PlaceholderToken, bodyTerminator),
		bodyTerminator,
	)
	if err != nil {
		return nil, err
	}

	var html string
	useHTML, err := r.input.Confirm("Add an HTML body? (y/n): ")
	if err != nil {
		return nil, err
	}
	if useHTML {
		html, err = r.input.Multiline(
			fmt.Sprintf("HTML body (finish with %s):", bodyTerminator),
			bodyTerminator,
		)
		if err != nil {
			return nil, err
		}
	}

	cc, err := r.input.Line("CC (optional, blank to skip): ")
	if err != nil {
		return nil, err
	}
	bcc, err := r.input.Line("BCC (optional, blank to skip): ")
	if err != nil {
		return nil, err
	}

	return &mailer.Message{
		FromName: from,
		Subject:  subject,
		Text:     text,
		HTML:     html,
		CC:       cc,
		BCC:      bcc,
	}, nil
}

// summarize prints the run totals.
func (r *Runner) summarize(s Summary) {
	fmt.Fprintf(r.out, "Total: %d, sent: %d, failed: %d (%.2f%% success)\n",
		s.Total, s.Sent, s.Failed, s.SuccessRate())
}

// reportPath resolves where to save the report, prompting unless one was
// pre-supplied or the run is non-interactive.
func (r *Runner) reportPath(p Params) (string, error) {
	if p.ReportPath != "" {
		return p.ReportPath, nil
	}
	if p.AutoConfirm {
		return "", nil
	}

	save, err := r.input.Confirm("Save the report? (y/n): ")
	if err != nil || !save {
		return "", err
	}
	path, err := r.input.Line(fmt.Sprintf("Report path (default %s): ", r.config.DefaultReportPath))
	if err != nil {
		return "", err
	}
	if path == "" {
		path = r.config.DefaultReportPath
	}
	return path, nil
}

func (r *Runner) transition(log *slog.Logger, s State) {
	r.state = s
	log.Debug("state transition", slog.String("state", string(s)))
}

func (r *Runner) fail(log *slog.Logger, err error) error {
	r.state = StateFailed
	log.Error("broadcast failed", slog.String("error", err.Error()))
	return err
}

// sleep pauses between sends, waking early on context cancellation.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
