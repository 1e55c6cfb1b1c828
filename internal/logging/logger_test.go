package logging_test

import (
	"bytes"

	"github.com/rwx-research/wait-until/internal/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = new(bytes.Buffer)
	})

	Describe("NewProductionLogger", func() {
		It("drops debug and info messages", func() {
			log := logging.NewProductionLogger(buf)
			log.Debug("some debug message")
			log.Info("some info message")
			Expect(log.Sync()).To(Succeed())

			Expect(buf.String()).To(BeEmpty())
		})

		It("prints warnings with a level prefix", func() {
			log := logging.NewProductionLogger(buf)
			log.Warnf("unable to %s", "render")
			Expect(log.Sync()).To(Succeed())

			Expect(buf.String()).To(ContainSubstring("WARN"))
			Expect(buf.String()).To(ContainSubstring("unable to render"))
		})
	})

	Describe("NewDebugLogger", func() {
		It("prints debug messages", func() {
			log := logging.NewDebugLogger(buf)
			log.Debugf("Executing %q", "true")
			Expect(log.Sync()).To(Succeed())

			Expect(buf.String()).To(ContainSubstring("DEBUG"))
			Expect(buf.String()).To(ContainSubstring(`Executing "true"`))
		})
	})

	Describe("NewLogger", func() {
		It("only prints debug messages when asked to", func() {
			logging.NewLogger(buf, false).Debug("hidden")
			Expect(buf.String()).To(BeEmpty())

			logging.NewLogger(buf, true).Debug("shown")
			Expect(buf.String()).To(ContainSubstring("shown"))
		})
	})
})
