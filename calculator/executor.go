package calculator

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// 按行分配任务：每个任务负责 [start, end) 范围内的行，
// 各行写入预先分配好的存储，任务之间没有共享的可变状态
type executor struct {
	workers int
}

type task struct {
	start int
	end   int
}

func newExecutor(workers int) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{workers: workers}
}

// split 将 total 行切分为任务，每个 worker 大约分到两个任务
func (e *executor) split(total int) []task {
	if total <= 0 {
		return nil
	}
	n := e.workers * 2
	if n > total {
		n = total
	}
	taskLen, remainder := total/n, total%n
	tasks := make([]task, 0, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + taskLen
		if i < remainder {
			end++
		}
		tasks = append(tasks, task{start: start, end: end})
		start = end
	}
	return tasks
}

// dispatchTask 执行 f 覆盖 [0, total) 的所有行，返回耗时
func (e *executor) dispatchTask(total int, f func(t task) error) (time.Duration, error) {
	start := time.Now()
	if e.workers == 1 {
		err := f(task{start: 0, end: total})
		return time.Since(start), err
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for _, t := range e.split(total) {
		t := t
		g.Go(func() error {
			return f(t)
		})
	}
	err := g.Wait()
	return time.Since(start), err
}
