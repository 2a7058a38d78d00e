package handler

import "sync"

// inParallel runs the given fetches concurrently and returns the first error,
// after all have settled. Dashboards use it the way the pages batch their
// independent, order-insensitive resource fetches; it is an optimisation, not
// a correctness requirement.
func inParallel(fns ...func() error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fns))

	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func() error) {
			defer wg.Done()
			errs[i] = fn()
		}(i, fn)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
