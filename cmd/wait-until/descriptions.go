package main

// These constants hold the "long" description of a command. These get printed when running `--help`, for example.
const (
	descriptionWaitUntil = `'wait-until' executes a command and displays a spinner until it has finished. The output of
the command is held back while it is running and printed in full once it has exited.

The spinner is only shown if stdout is an interactive terminal, so redirecting the output to a
file or a pipe yields exactly what the command itself printed.

Example use:

	wait-until -- make build

	wait-until --message "Running migrations..." -- bundle exec rake db:migrate

	wait-until --command "npm run build" > build.log`
)
