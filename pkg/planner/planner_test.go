package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputDir(t *testing.T) {
	captureTime := time.Date(2020, 3, 5, 14, 22, 1, 0, time.Local)

	tests := []struct {
		name  string
		event string
		want  string
	}{
		{name: "no event", event: "", want: "/out/2020.03.05"},
		{name: "event appended after a dot", event: "trip", want: "/out/2020.03.05.trip"},
		{name: "event is trimmed", event: "trip ", want: "/out/2020.03.05.trip"},
		{name: "whitespace-only event behaves like none", event: "   ", want: "/out/2020.03.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{OutputRoot: "/out", DefaultEvent: tt.event}
			assert.Equal(t, tt.want, opts.OutputDir(captureTime))
		})
	}
}

func TestStem(t *testing.T) {
	captureTime := time.Date(2020, 3, 5, 14, 22, 1, 0, time.Local)

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "no prefix", prefix: "", want: "20200305142201"},
		{name: "prefix prepended", prefix: "jd", want: "jd20200305142201"},
		{name: "prefix is trimmed", prefix: " jd ", want: "jd20200305142201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Prefix: tt.prefix}
			assert.Equal(t, tt.want, opts.Stem(captureTime))
		})
	}
}

func TestBuildPlanSequencesBucketsByBasename(t *testing.T) {
	captureTime := time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local)
	groups := GroupFiles([]string{"/in/b.jpg", "/in/a.jpg", "/in/c.jpg"})
	times := CaptureTimes{"/in/a": captureTime, "/in/b": captureTime, "/in/c": captureTime}

	plan, err := BuildPlan(groups, times, Options{OutputRoot: "/out"})
	require.NoError(t, err)
	require.Len(t, plan.Buckets, 1)

	for _, bucket := range plan.Buckets {
		assert.Equal(t, "/out/2021.01.01", bucket.Dir)
		assert.Equal(t, "20210101100000", bucket.Stem)
		assert.Equal(t, []string{"/in/a", "/in/b", "/in/c"}, bucket.Basenames)
	}
}

func TestBuildPlanExcludesUnresolvedGroups(t *testing.T) {
	groups := GroupFiles([]string{"/in/a.jpg", "/in/b.jpg"})
	times := CaptureTimes{"/in/a": time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local)}

	plan, err := BuildPlan(groups, times, Options{OutputRoot: "/out"})
	require.NoError(t, err)
	require.Len(t, plan.Buckets, 1)

	for _, bucket := range plan.Buckets {
		assert.Equal(t, []string{"/in/a"}, bucket.Basenames)
	}
	for op := range plan.Operations() {
		assert.NotContains(t, op.From, "/in/b")
	}
}

func TestBuildPlanSequenceOverflow(t *testing.T) {
	captureTime := time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local)
	groups := make(FileGroups)
	times := make(CaptureTimes)
	for i := 0; i < 27; i++ {
		basename := fmt.Sprintf("/in/IMG%02d", i)
		exts := make(ExtSet)
		exts.Add(".jpg")
		groups[basename] = exts
		times[basename] = captureTime
	}

	plan, err := BuildPlan(groups, times, Options{OutputRoot: "/out"})
	assert.Nil(t, plan)

	var overflow *SequenceOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "/out/2021.01.01", overflow.Dir)
	assert.Equal(t, "20210101100000", overflow.Stem)
	assert.Equal(t, 27, overflow.Count)
}

func TestBuildPlanExactlyTwentySixMembersIsFine(t *testing.T) {
	captureTime := time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local)
	groups := make(FileGroups)
	times := make(CaptureTimes)
	for i := 0; i < 26; i++ {
		basename := fmt.Sprintf("/in/IMG%02d", i)
		exts := make(ExtSet)
		exts.Add(".jpg")
		groups[basename] = exts
		times[basename] = captureTime
	}

	plan, err := BuildPlan(groups, times, Options{OutputRoot: "/out"})
	require.NoError(t, err)

	var last MoveOp
	for op := range plan.Operations() {
		last = op
	}
	assert.Equal(t, "/out/2021.01.01/20210101100000Z.jpg", last.To)
}

func TestBuildPlanIsDeterministic(t *testing.T) {
	groups := GroupFiles([]string{"/in/a.jpg", "/in/a.xmp", "/in/b.jpg", "/in/c.png"})
	times := CaptureTimes{
		"/in/a": time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local),
		"/in/b": time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local),
		"/in/c": time.Date(2022, 5, 6, 7, 8, 9, 0, time.Local),
	}
	opts := Options{OutputRoot: "/out", Prefix: "jd", DefaultEvent: "trip"}

	first, err := BuildPlan(groups, times, opts)
	require.NoError(t, err)
	second, err := BuildPlan(groups, times, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, collectOps(first), collectOps(second))
}

func TestOutputDirs(t *testing.T) {
	groups := GroupFiles([]string{"/in/a.jpg", "/in/b.jpg"})
	times := CaptureTimes{
		"/in/a": time.Date(2021, 1, 1, 10, 0, 0, 0, time.Local),
		"/in/b": time.Date(2021, 1, 2, 10, 0, 0, 0, time.Local),
	}

	plan, err := BuildPlan(groups, times, Options{OutputRoot: "/out"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/out/2021.01.01", "/out/2021.01.02"}, plan.OutputDirs())
}
