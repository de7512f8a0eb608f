//go:build !release
// +build !release

package mocks

import "sync"

type fakeCron struct {
	sync.Mutex
	jobs    map[int]func()
	specs   []string
	lastID  int
	removed []int
}

func (f *fakeCron) AddFunc(spec string, cmd func()) (int, error) {
	f.Lock()
	defer f.Unlock()
	f.lastID++
	f.jobs[f.lastID] = cmd
	f.specs = append(f.specs, spec)
	return f.lastID, nil
}

func (f *fakeCron) RemoveFunc(id int) {
	f.Lock()
	defer f.Unlock()
	delete(f.jobs, id)
	f.removed = append(f.removed, id)
}

// Run invokes every scheduled job once.
func (f *fakeCron) Run() {
	f.Lock()
	jobs := make([]func(), 0, len(f.jobs))
	for _, v := range f.jobs {
		jobs = append(jobs, v)
	}
	f.Unlock()

	for _, v := range jobs {
		v()
	}
}

// Scheduled returns number of active jobs.
func (f *fakeCron) Scheduled() int {
	f.Lock()
	defer f.Unlock()
	return len(f.jobs)
}

// Specs returns schedules of all registered jobs.
func (f *fakeCron) Specs() []string {
	f.Lock()
	defer f.Unlock()
	return append([]string{}, f.specs...)
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *fakeCron {
	return &fakeCron{
		jobs: make(map[int]func()),
	}
}
