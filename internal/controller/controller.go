package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Raj-Mandhyan/EduGenie3/internal/lesson"
	"github.com/Raj-Mandhyan/EduGenie3/internal/logger"
)

const (
	// ImageAlt is the alt text for every generated image.
	ImageAlt = "Generated diagram"

	// ErrorPrefix starts every user-visible failure message.
	ErrorPrefix = "Oops! Something went wrong. "
)

// ErrInFlight is returned when a submission arrives while another request
// is still outstanding.
var ErrInFlight = errors.New("a lesson request is already in flight")

// Controller runs the submit → request → render cycle against a Port.
type Controller struct {
	port Port
	gen  lesson.Generator
	log  *logger.Logger

	mu        sync.Mutex
	state     State
	requestID string
	started   time.Time
}

// New creates a Controller. port and gen are required.
func New(port Port, gen lesson.Generator, log *logger.Logger) *Controller {
	if port == nil {
		panic("controller: nil port")
	}
	if gen == nil {
		panic("controller: nil generator")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{port: port, gen: gen, log: log}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one full cycle synchronously: Begin, Generate, Complete.
// It returns the request error, if any, after it has been rendered.
func (c *Controller) Submit(ctx context.Context) error {
	req, err := c.Begin()
	if err != nil {
		return err
	}
	res, err := c.gen.Generate(ctx, req)
	c.Complete(res, err)
	return err
}

// Begin enters InFlight: it shows the busy indicator, clears old results,
// disables submit and collects the form values. It returns ErrInFlight,
// without touching the UI, if a request is already outstanding.
func (c *Controller) Begin() (lesson.Request, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Busy() {
		c.log.Warn("submission ignored", "request_id", c.requestID, "reason", ErrInFlight.Error())
		return lesson.Request{}, ErrInFlight
	}

	c.state = StateInFlight
	c.requestID = uuid.New().String()
	c.started = time.Now()

	c.port.SetBusy(true)
	c.port.ClearResults()
	c.port.SetSubmitEnabled(false)

	req := lesson.NewRequest(c.port.Topic(), c.port.Difficulty(), c.port.FormatChecked)
	c.log.Debug("lesson request",
		"request_id", c.requestID,
		"topic", req.Topic,
		"difficulty", req.Difficulty,
		"formats", req.Formats,
	)
	return req, nil
}

// Generate forwards to the controller's generator. The TUI calls it from a
// command so the network wait happens off the update loop.
func (c *Controller) Generate(ctx context.Context, req lesson.Request) (*lesson.Result, error) {
	return c.gen.Generate(ctx, req)
}

// Complete renders the outcome of the request started by Begin and returns
// to a resting state. Calls without a matching Begin are ignored.
func (c *Controller) Complete(res *lesson.Result, err error) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Busy() {
		c.log.Warn("completion without request", "state", c.state.String())
		return c.state
	}

	log := c.log.With("request_id", c.requestID, "latency_ms", time.Since(c.started).Milliseconds())

	if err != nil {
		log.Error("lesson request failed", "error", err)
		c.port.ClearResults()
		c.port.ShowError(ErrorPrefix + err.Error())
		c.state = StateFailure
	} else {
		c.render(res, log)
		c.state = StateSuccess
	}

	c.port.SetBusy(false)
	c.port.SetSubmitEnabled(true)
	return c.state
}

func (c *Controller) render(res *lesson.Result, log *logger.Logger) {
	c.port.ClearResults()
	if res == nil {
		log.Info("lesson request succeeded", "fragments", 0)
		return
	}

	fragments := 0
	if res.HasText() {
		c.port.AppendText(*res.Text)
		fragments++
	}
	if res.HasImage() {
		c.port.AppendImage(*res.ImageURL, ImageAlt)
		fragments++
	}
	if res.HasAudio() {
		c.port.AppendAudio(*res.AudioURL, true)
		fragments++
	}
	if res.HasVideo() {
		log.Debug("video url received but not rendered", "video_url", *res.VideoURL)
	}
	log.Info("lesson request succeeded", "fragments", fragments)
}
