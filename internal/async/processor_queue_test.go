package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/carbux/fuel-receipts/internal/ocr"
)

func TestAsync(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Async Suite")
}

type recordingHandler struct {
	mu        sync.Mutex
	results   []error // consumed per call, last one repeats
	attempts  []int
	exhausted []error
}

func (h *recordingHandler) Handle(_ context.Context, msg ProcessImportJobMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attempts = append(h.attempts, msg.Attempt)
	if len(h.results) == 0 {
		return nil
	}
	err := h.results[0]
	if len(h.results) > 1 {
		h.results = h.results[1:]
	}
	return err
}

func (h *recordingHandler) Exhausted(_ context.Context, _ ProcessImportJobMessage, cause error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exhausted = append(h.exhausted, cause)
}

func (h *recordingHandler) calls() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int(nil), h.attempts...)
}

func (h *recordingHandler) exhaustions() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]error(nil), h.exhausted...)
}

var _ = Describe("ProcessorQueue", func() {
	var (
		handler *recordingHandler
		queue   *ProcessorQueue
	)

	newQueue := func() *ProcessorQueue {
		return NewProcessorQueue(handler, nil,
			WithWorkers(2),
			WithMaxAttempts(3),
			WithRetryDelay(time.Millisecond),
			WithProcessTimeout(time.Second),
		)
	}

	msg := func() ProcessImportJobMessage {
		return ProcessImportJobMessage{ImportJobID: uuid.New(), Attempt: 1, SubmittedAt: time.Now()}
	}

	AfterEach(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		queue.Shutdown(ctx)
	})

	When("the handler succeeds", func() {
		BeforeEach(func() {
			handler = &recordingHandler{}
			queue = newQueue()
		})

		It("delivers exactly once", func() {
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			Eventually(handler.calls).Should(Equal([]int{1}))
			Consistently(handler.calls, 50*time.Millisecond).Should(HaveLen(1))
		})
	})

	When("the handler fails transiently then recovers", func() {
		BeforeEach(func() {
			handler = &recordingHandler{results: []error{errors.New("transient"), nil}}
			queue = newQueue()
		})

		It("redelivers with an incremented attempt", func() {
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			Eventually(handler.calls).Should(Equal([]int{1, 2}))
			Expect(handler.exhaustions()).To(BeEmpty())
		})
	})

	When("the handler keeps failing transiently", func() {
		BeforeEach(func() {
			handler = &recordingHandler{results: []error{errors.New("still down")}}
			queue = newQueue()
		})

		It("stops at the attempt budget and reports exhaustion", func() {
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			Eventually(handler.calls).Should(Equal([]int{1, 2, 3}))
			Eventually(handler.exhaustions).Should(HaveLen(1))
			Consistently(handler.calls, 50*time.Millisecond).Should(HaveLen(3))
		})
	})

	When("the handler fails permanently", func() {
		BeforeEach(func() {
			handler = &recordingHandler{results: []error{
				&ocr.Error{Kind: ocr.KindPermanent, Op: "provider", Err: errors.New("bad doc")},
			}}
			queue = newQueue()
		})

		It("does not redeliver or report exhaustion", func() {
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			Eventually(handler.calls).Should(Equal([]int{1}))
			Consistently(handler.calls, 50*time.Millisecond).Should(HaveLen(1))
			Expect(handler.exhaustions()).To(BeEmpty())
		})
	})

	When("shut down", func() {
		BeforeEach(func() {
			handler = &recordingHandler{}
			queue = newQueue()
		})

		It("drains in-flight work and drops later enqueues", func() {
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			queue.Shutdown(ctx)
			Eventually(handler.calls).Should(HaveLen(1))
			Expect(queue.Enqueue(context.Background(), msg())).To(Succeed())
			Consistently(handler.calls, 50*time.Millisecond).Should(HaveLen(1))
		})
	})
})
