// Package controller ведёт жизненный цикл запроса на сокращение и
// временный флаг "скопировано".
//
// Все переходы выполняет одна горутина цикла событий (Run). Сетевой вызов и
// таймер копирования запускаются отдельными задачами и возвращают результат
// обратно в цикл событиями.
package controller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Totarae/URLShortenerClient/internal/client"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Shortener,Clipboard

// CopyWindow сколько держится флаг Copied после успешного копирования.
const CopyWindow = 1500 * time.Millisecond

var (
	// ErrStopped цикл событий завершён.
	ErrStopped = errors.New("controller stopped")
	// ErrAlreadyRunning Run вызван повторно.
	ErrAlreadyRunning = errors.New("controller already running")
)

// Shortener сокращает ссылку. Ошибки сводятся к виду через client.KindOf.
type Shortener interface {
	Shorten(ctx context.Context, url string) (string, error)
}

// Clipboard записывает текст в буфер обмена.
type Clipboard interface {
	WriteText(text string) error
}

type (
	submitEvent struct {
		url string
		ack chan struct{}
	}
	outcomeEvent struct {
		seq    uint64
		result string
		err    error
	}
	copyEvent struct {
		ack chan bool
	}
	copyResultEvent struct {
		seq uint64
		err error
		ack chan bool
	}
	copyElapsedEvent struct {
		gen uint64
	}
)

// Controller конечный автомат Idle → Submitting → Success/Failure.
type Controller struct {
	api    Shortener
	clip   Clipboard
	logger *zap.Logger

	// afterFunc планирует одноразовый таймер и возвращает функцию его остановки.
	afterFunc func(d time.Duration, f func()) (stop func() bool)

	events  chan any
	done    chan struct{}
	running atomic.Bool

	current atomic.Pointer[State]

	subsMu  sync.Mutex
	subs    map[uint64]chan State
	nextSub uint64

	// Поля ниже принадлежат горутине цикла.
	state     State
	copyGen   uint64
	stopTimer func() bool
}

// New создаёт контроллер в состоянии Idle. Цикл запускается через Run.
func New(api Shortener, clip Clipboard, logger *zap.Logger) *Controller {
	c := &Controller{
		api:    api,
		clip:   clip,
		logger: logger,
		afterFunc: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
		events: make(chan any),
		done:   make(chan struct{}),
		subs:   make(map[uint64]chan State),
	}
	initial := State{Status: Idle}
	c.current.Store(&initial)
	return c
}

// Run обрабатывает события до отмены ctx. Тот же ctx передаётся в сетевые вызовы.
func (c *Controller) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			if c.stopTimer != nil {
				c.stopTimer()
			}
			return ctx.Err()
		case ev := <-c.events:
			c.handle(ctx, ev)
		}
	}
}

// Submit начинает новую отправку url. Возвращается, когда состояние
// Submitting уже зафиксировано; результат сетевого вызова придёт позже.
func (c *Controller) Submit(ctx context.Context, url string) error {
	ack := make(chan struct{})
	if err := c.send(ctx, submitEvent{url: url, ack: ack}); err != nil {
		return err
	}
	select {
	case <-ack:
		return nil
	case <-c.done:
		return ErrStopped
	}
}

// Copy копирует короткую ссылку в буфер обмена. Вне Success ничего не делает.
// Возвращает true, если копирование удалось и флаг Copied поднят.
func (c *Controller) Copy(ctx context.Context) (bool, error) {
	ack := make(chan bool, 1)
	if err := c.send(ctx, copyEvent{ack: ack}); err != nil {
		return false, err
	}
	select {
	case ok := <-ack:
		return ok, nil
	case <-c.done:
		return false, ErrStopped
	}
}

// Snapshot возвращает последнее зафиксированное состояние.
func (c *Controller) Snapshot() State {
	return *c.current.Load()
}

// Subscribe возвращает канал состояний. В канале всегда лежит только самое
// свежее состояние; промежуточные могут быть пропущены. Текущее состояние
// отправляется сразу. Функция отписки закрывает канал.
func (c *Controller) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	c.subsMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.Snapshot()
	c.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			close(ch)
			c.subsMu.Unlock()
		})
	}
}

func (c *Controller) send(ctx context.Context, ev any) error {
	select {
	case c.events <- ev:
		return nil
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post доставляет событие из фоновой задачи; после остановки цикла событие теряется.
func (c *Controller) post(ev any) {
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

func (c *Controller) handle(ctx context.Context, ev any) {
	switch e := ev.(type) {
	case submitEvent:
		c.handleSubmit(ctx, e)
	case outcomeEvent:
		c.handleOutcome(e)
	case copyEvent:
		c.handleCopy(e)
	case copyResultEvent:
		c.handleCopyResult(e)
	case copyElapsedEvent:
		c.handleCopyElapsed(e)
	}
}

func (c *Controller) handleSubmit(ctx context.Context, e submitEvent) {
	seq := c.state.Seq + 1
	c.commit(State{Status: Submitting, Seq: seq})
	close(e.ack)

	go func() {
		result, err := c.api.Shorten(ctx, e.url)
		c.post(outcomeEvent{seq: seq, result: result, err: err})
	}()
}

func (c *Controller) handleOutcome(e outcomeEvent) {
	if e.seq != c.state.Seq || c.state.Status != Submitting {
		c.logger.Debug("stale outcome dropped",
			zap.Uint64("seq", e.seq),
			zap.Uint64("latest", c.state.Seq),
		)
		return
	}
	if e.err != nil {
		c.commit(State{Status: Failure, Kind: client.KindOf(e.err), Seq: e.seq})
		return
	}
	c.commit(State{Status: Success, Result: e.result, Seq: e.seq})
}

func (c *Controller) handleCopy(e copyEvent) {
	if c.state.Status != Success {
		e.ack <- false
		return
	}
	seq, text := c.state.Seq, c.state.Result

	go func() {
		err := c.clip.WriteText(text)
		c.post(copyResultEvent{seq: seq, err: err, ack: e.ack})
	}()
}

func (c *Controller) handleCopyResult(e copyResultEvent) {
	if e.err != nil {
		c.logger.Debug("clipboard write failed", zap.Error(e.err))
		e.ack <- false
		return
	}
	if c.state.Status != Success || c.state.Seq != e.seq {
		e.ack <- false
		return
	}

	if c.stopTimer != nil {
		c.stopTimer()
	}
	c.copyGen++
	gen := c.copyGen
	c.stopTimer = c.afterFunc(CopyWindow, func() {
		c.post(copyElapsedEvent{gen: gen})
	})

	if !c.state.Copied {
		next := c.state
		next.Copied = true
		c.commit(next)
	}
	e.ack <- true
}

func (c *Controller) handleCopyElapsed(e copyElapsedEvent) {
	if e.gen != c.copyGen || !c.state.Copied {
		return
	}
	next := c.state
	next.Copied = false
	c.commit(next)
}

// commit фиксирует состояние и рассылает его подписчикам до обработки
// следующего события.
func (c *Controller) commit(s State) {
	c.state = s
	snapshot := s
	c.current.Store(&snapshot)

	c.logger.Debug("state committed",
		zap.Stringer("status", s.Status),
		zap.Uint64("seq", s.Seq),
		zap.Bool("copied", s.Copied),
	)

	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
