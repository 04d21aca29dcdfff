/*
Copyright © 2020 Stopwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package shell

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RunCLIInstance runs r until it returns or the process is
// interrupted, then closes the stopwatch. End of input counts as a
// normal exit, and so does a failure to close: it has been logged
// by the time Close returns.
func RunCLIInstance(r Runner, stopwatch io.Closer) error {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	chanSignal := make(chan os.Signal, 1)
	signal.Notify(chanSignal, os.Interrupt)
	defer signal.Stop(chanSignal)

	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-chanSignal:
		log.WithFields(log.Fields{"module": "cli_instance"}).Info("interrupted")
	}
	cancelFunc()

	if errors.Cause(err) == io.EOF {
		err = nil
	}

	if e := stopwatch.Close(); e != nil {
		log.WithFields(log.Fields{"module": "cli_instance", "err": e}).Debug("stopwatch closed with error")
	}
	return err
}
