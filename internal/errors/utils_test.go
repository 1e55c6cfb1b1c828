package errors_test

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/rwx-research/wait-until/internal/errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type plainDetailedError struct {
	description string
}

func (e plainDetailedError) Error() string       { return "oops" }
func (e plainDetailedError) Type() string        { return "Plain Error" }
func (e plainDetailedError) Description() string { return e.description }
func (e plainDetailedError) Resolution() string  { return "" }

var _ = Describe("Utils", func() {
	Describe("WithStack", func() {
		It("wraps an error without a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.WithStack(err)
			Expect(wrapped.Error()).To(Equal("some error"))
			Expect(wrapped).NotTo(Equal(err))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))

			var errPkg error
			ok := errors.As(err, &errPkg)

			Expect(ok).To(Equal(true))
			Expect(errPkg).To(Equal(err))
		})
	})

	Describe("Wrap", func() {
		It("keeps the category of the wrapped error", func() {
			wrapped := errors.Wrap(errors.NewConfigurationError("unknown mode"), "unable to load configuration")

			Expect(wrapped.Error()).To(Equal("unable to load configuration: unknown mode"))
			_, ok := errors.AsConfigurationError(wrapped)
			Expect(ok).To(BeTrue())
		})

		It("wraps an error with a message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrap(err, "some prefix")
			Expect(wrapped.Error()).To(Equal("some prefix: some error"))
			Expect(wrapped).NotTo(Equal(err))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))

			var errPkg error
			ok := errors.As(err, &errPkg)

			Expect(ok).To(Equal(true))
			Expect(errPkg).To(Equal(err))
		})
	})

	Describe("Wrapf", func() {
		It("wraps an error with a formatted message", func() {
			err := pkgerrors.New("some error")
			wrapped := errors.Wrapf(err, "some prefix %v", "formatted")
			Expect(wrapped.Error()).To(Equal("some prefix formatted: some error"))
			Expect(wrapped).NotTo(Equal(err))
			Expect(fmt.Sprintf("%+v", wrapped)).To(ContainSubstring("/utils_test.go"))

			var errPkg error
			ok := errors.As(err, &errPkg)

			Expect(ok).To(Equal(true))
			Expect(errPkg).To(Equal(err))
		})
	})

	Describe("WithDecoration", func() {
		It("renders detailed errors", func() {
			err := errors.WithStack(errors.NewSpawnError("nope", "unable to start %q", "nope"))
			decorated := errors.WithDecoration(err)

			Expect(decorated.Error()).To(HavePrefix(`Spawn Error: unable to start "nope"`))
			Expect(decorated.Error()).To(ContainSubstring("could not be started by the operating system"))
			Expect(decorated.Error()).To(ContainSubstring("PATH"))
		})

		It("wraps long descriptions", func() {
			err := errors.NewSpawnError("nope", "unable to start %q", "nope")
			for _, line := range strings.Split(errors.WithDecoration(err).Error(), "\n") {
				Expect(len(line)).To(BeNumerically("<=", 80))
			}
		})

		It("leaves out an empty resolution", func() {
			err := plainDetailedError{description: "Something went wrong."}

			Expect(errors.WithDecoration(err).Error()).To(Equal("Plain Error: oops\n\nSomething went wrong.\n"))
		})

		It("falls back to the plain message without a description", func() {
			err := plainDetailedError{}

			Expect(errors.WithDecoration(err).Error()).To(Equal("oops"))
		})

		It("leaves other errors untouched", func() {
			err := errors.NewInputError("no command")
			Expect(errors.WithDecoration(err)).To(Equal(err))
		})
	})
})
