package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/practice-demos/internal/service"
)

// The full demo catalog run against the server's own JSON API.
func TestIntegration_DemosAgainstLocalAPI(t *testing.T) {
	app := newTestApp(t, appOptions{
		demos: func(baseURL string) []service.Demo {
			plan := service.DefaultPlan()
			plan.PromiseDelay = time.Millisecond
			plan.AwaitDelay = time.Millisecond
			demos, err := service.NewDemos(plan, service.NewPostClient(baseURL, 5*time.Second))
			if err != nil {
				t.Fatalf("NewDemos: %v", err)
			}
			return demos
		},
	})

	run := createRun(t, app)

	var out, errOut []string
	for _, l := range run.Lines {
		if l.Stream == "err" {
			errOut = append(errOut, l.Text)
		} else {
			out = append(out, l.Text)
		}
	}
	stdout, stderr := strings.Join(out, "\n"), strings.Join(errOut, "\n")

	for _, want := range []string{
		"sum of squares of evens: 56",
		`{"username":"big","score":100}`,
		"THEN: Finished after 1 ms",
		"FINALLY: promise demo finished",
		"async/await result: Finished after 1 ms",
		"Title: qui est esse",
		"Fetched all posts. Total posts: 10",
		"Post ID: 3, Title: ea molestias quasi exercitationem repellat qui ipsa sit aut",
		"FINALLY: fetch error demo finished",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected stdout to contain %q", want)
		}
	}
	if strings.Contains(stdout, "Post ID: 4,") {
		t.Error("fetch-all demo should only display the first three posts")
	}
	for _, want := range []string{
		"CATCH: simulated async failure",
		"Expected error from bad URL: HTTP error! status = 404",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected stderr to contain %q", want)
		}
	}
	if strings.Contains(stderr, "fetch post error") {
		t.Errorf("post fetches should succeed against the local API:\n%s", stderr)
	}

	resp := app.do(t, http.MethodGet, "/runs/"+run.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
