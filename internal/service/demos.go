package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/practice-demos/internal/domain"
)

// Demo is a self-contained illustration that prints to a Console.
type Demo struct {
	Name string
	Run  func(ctx context.Context, c *Console)
}

// Plan controls which demos run and the inputs of the asynchronous ones.
type Plan struct {
	Demos        []string
	PromiseDelay time.Duration
	AwaitDelay   time.Duration
	PostIDs      []int64
	SampleSize   int
	BadPath      string
}

// DefaultPlan returns the standard delays and inputs for every demo.
func DefaultPlan() Plan {
	return Plan{
		PromiseDelay: 500 * time.Millisecond,
		AwaitDelay:   700 * time.Millisecond,
		PostIDs:      []int64{1, 2, 3},
		SampleSize:   3,
		BadPath:      "this-url-does-not-exist",
	}
}

// Demo names, in the order the runner executes them.
const (
	DemoBasics      = "basics"
	DemoArrays      = "arrays"
	DemoSummary     = "summary"
	DemoJSON        = "json"
	DemoTypes       = "types"
	DemoUnions      = "unions"
	DemoPromise     = "promise"
	DemoAsyncAwait  = "async-await"
	DemoFetchPosts  = "fetch-posts"
	DemoFetchAll    = "fetch-all"
	DemoFetchFailed = "fetch-error"
)

// NewDemos builds the demo catalog for plan. Network demos use client.
// When plan.Demos is non-empty only the named demos are returned, still in
// catalog order.
func NewDemos(plan Plan, client *PostClient) ([]Demo, error) {
	all := []Demo{
		{Name: DemoBasics, Run: basicsDemo},
		{Name: DemoArrays, Run: arraysDemo},
		{Name: DemoSummary, Run: summaryDemo},
		{Name: DemoJSON, Run: jsonDemo},
		{Name: DemoTypes, Run: typesDemo},
		{Name: DemoUnions, Run: unionsDemo},
		{Name: DemoPromise, Run: func(ctx context.Context, c *Console) {
			promiseDemo(ctx, c, plan.PromiseDelay)
		}},
		{Name: DemoAsyncAwait, Run: func(ctx context.Context, c *Console) {
			asyncAwaitDemo(ctx, c, plan.AwaitDelay)
		}},
		{Name: DemoFetchPosts, Run: func(ctx context.Context, c *Console) {
			for _, id := range plan.PostIDs {
				fetchPostDemo(ctx, c, client, id)
			}
		}},
		{Name: DemoFetchAll, Run: func(ctx context.Context, c *Console) {
			fetchAllDemo(ctx, c, client, plan.SampleSize)
		}},
		{Name: DemoFetchFailed, Run: func(ctx context.Context, c *Console) {
			fetchErrorDemo(ctx, c, client, plan.BadPath)
		}},
	}

	if len(plan.Demos) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(plan.Demos))
	for _, name := range plan.Demos {
		wanted[name] = true
	}

	var selected []Demo
	for _, d := range all {
		if wanted[d.Name] {
			selected = append(selected, d)
			delete(wanted, d.Name)
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("%w: unknown demo %q", domain.ErrInvalidInput, name)
	}
	return selected, nil
}

func basicsDemo(_ context.Context, c *Console) {
	c.Log("add(2, 3) =", Add(2, 3))
	c.Log("multiply(2, 5) =", Multiply(2, 5))
	c.Log("subtract(10, 4) =", Subtract(10, 4))
	c.Log("square(5) =", Square(5))
	c.Log("Hello!")

	dev := domain.Developer{Name: "Big", Age: 27, IsDeveloper: true}
	c.Log(dev.Name)
	c.Log(dev.Age)
	dev.Country = "Thailand"
	dev.Age = 28
	c.Logf("{name: %q, age: %d, isDeveloper: %t, country: %q}", dev.Name, dev.Age, dev.IsDeveloper, dev.Country)
}

func arraysDemo(_ context.Context, c *Console) {
	numbers := []int{1, 2, 3, 4, 5}
	c.Log("doubled:", Double(numbers))
	c.Log("evens:", FilterEven(numbers))
	c.Log("sum:", Sum(numbers))

	seven := []int{1, 2, 3, 4, 5, 6, 7}
	c.Log("Even:", FilterEven(seven))
	c.Log("Odd:", FilterOdd(seven))

	c.Log("sum of squares of evens:", SumOfEvenSquares([]int{1, 2, 3, 4, 5, 6}))
}

func summaryDemo(_ context.Context, c *Console) {
	c.Log(formatSummary(SummarizeArray([]int{3, 7, 2, 9, 4})))
	c.Log(formatSummary(SummarizeArrayReduce([]int{10, 5, 8, 1, 12})))
	c.Log(formatSummary(SummarizeArray(nil)))

	p := Partition([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	c.Logf("{even: %v, odd: %v, sum: %d, avg: %g, length: %d}", p.Even, p.Odd, p.Sum, p.Avg, p.Length)
}

func formatSummary(s domain.Summary, ok bool) string {
	if !ok {
		return "null"
	}
	return fmt.Sprintf("{min: %d, max: %d, sum: %d}", s.Min, s.Max, s.Sum)
}

func jsonDemo(_ context.Context, c *Console) {
	card := domain.ScoreCard{Username: "big", Score: 100}
	text, parsed, err := RoundTripScoreCard(card)
	if err != nil {
		c.Error("json round trip error:", err)
		return
	}
	c.Log(text)
	c.Log(parsed.Username)
	c.Log(parsed.Score)
	c.Log("round trip equal:", parsed == card)
}

func typesDemo(_ context.Context, c *Console) {
	p1 := domain.Point{X: 10, Y: 20}
	p2 := domain.Point{X: 5, Y: 15}
	c.Logf("Point p1: {x: %d, y: %d}", p1.X, p1.Y)
	c.Logf("Point p2: {x: %d, y: %d}", p2.X, p2.Y)

	person := domain.Person{ID: 1}
	admin := domain.AdminPerson{Person: domain.Person{ID: 3}, Role: "superadmin"}
	c.Logf("Person1 : {id: %d}", person.ID)
	c.Logf("Person3 extended : {id: %d, role: %q}", admin.ID, admin.Role)

	member := domain.Member{ID: 3, Name: "Bigky"}
	c.Log(member.Greet())

	for _, v := range []any{"Hello", 42, nil} {
		c.Log("value1:", DescribeValue(v))
	}
	for _, s := range []domain.Status{domain.StatusPending, domain.StatusSuccess} {
		c.Log("currentStatus:", s)
	}

	age := 26
	c.Log("userA:", domain.Account{ID: 1, Name: "Big", Email: "big@example.com"})
	c.Log("userB:", domain.Account{ID: 2, Name: "Bigky", Email: "bigky@example.com", Age: &age})

	for _, in := range []any{95, "88", "not a number"} {
		c.Logf("normalizeScore(%v): %g", in, NormalizeScore(in))
	}

	users := []domain.User{
		{ID: 1, Name: "Big", Email: "big@example.com"},
		{ID: 2, Name: "Bigky", Email: "bigky@example.com"},
		{ID: 3, Name: "Tharittapol", Email: "tharittapol@example.com"},
	}
	c.Log("All emails:", GetEmails(users))

	for _, in := range []any{101, "BigUser"} {
		label, err := IdentifyUser(in)
		if err != nil {
			c.Error("identify user error:", err)
			continue
		}
		c.Log(label)
	}

	for _, s := range []domain.OrderStatus{domain.OrderPaid, domain.OrderShipped, domain.OrderCancelled} {
		ok, err := CanRefund(s)
		if err != nil {
			c.Error("can refund error:", err)
			continue
		}
		c.Logf("canRefund(%s): %t", s, ok)
	}

	c.Log(FormatResult(domain.SuccessResult{Data: "Data loaded successfully."}))
	c.Log(FormatResult(domain.ErrorResult{Error: "Failed to load data."}))
}

func unionsDemo(_ context.Context, c *Console) {
	shapes := []domain.Shape{
		domain.Circle{Radius: 10},
		domain.Rectangle{Width: 5, Height: 4},
	}
	for _, s := range shapes {
		c.Logf("%s area: %g", s.Kind(), s.Area())
	}

	payments := []domain.Payment{
		domain.CashPayment{},
		domain.CreditPayment{CardNumber: "1234567812345678"},
		domain.PromptPayPayment{Phone: "089-123-4567"},
	}
	if untagged, err := domain.DecodePayment([]byte(`{"phone":"089-123-4567"}`)); err != nil {
		c.Error("decode payment error:", err)
	} else {
		payments = append(payments, untagged)
	}

	for _, p := range payments {
		desc, err := DescribePayment(p)
		if err != nil {
			c.Error("describe payment error:", err)
			continue
		}
		c.Log(desc)
	}
}

func promiseDemo(ctx context.Context, c *Console, delay time.Duration) {
	for _, success := range []bool{true, false} {
		c.Log(">> promise demo start, success =", success)

		future := Go(ctx, func(ctx context.Context) (string, error) {
			return SimulateAsyncOperation(ctx, success, delay)
		})
		handled := future.Handle(
			func(result string) { c.Log("THEN:", result) },
			func(err error) { c.Error("CATCH:", err) },
			func() { c.Log("FINALLY: promise demo finished") },
		)

		// Wait even when cancelled: nothing may print after the demo returns.
		<-handled
		if ctx.Err() != nil {
			return
		}
	}
}

func asyncAwaitDemo(ctx context.Context, c *Console, delay time.Duration) {
	c.Log(">> async/await demo start")
	defer c.Log("FINALLY: async/await demo finished")

	result, err := SimulateAsyncOperation(ctx, true, delay)
	if err != nil {
		c.Error("async/await error:", err)
		return
	}
	c.Log("async/await result:", result)
}

func fetchPostDemo(ctx context.Context, c *Console, client *PostClient, id int64) {
	c.Logf(">> Fetching post %d from: %s", id, client.URL(fmt.Sprintf("posts/%d", id)))

	post, err := client.GetPost(ctx, id)
	if err != nil {
		c.Error("fetch post error:", err)
		return
	}
	c.Log("API response data:")
	c.Log("ID:", post.ID)
	c.Log("Title:", post.Title)
	c.Log("Body:", post.Body)
}

func fetchAllDemo(ctx context.Context, c *Console, client *PostClient, sampleSize int) {
	c.Log(">> Fetching all posts from:", client.URL("posts"))

	posts, err := client.ListPosts(ctx)
	if err != nil {
		c.Error("fetch all posts error:", err)
		return
	}
	c.Log("Fetched all posts. Total posts:", len(posts))
	for _, p := range posts[:max(0, min(sampleSize, len(posts)))] {
		c.Logf("Post ID: %d, Title: %s", p.ID, p.Title)
	}
}

func fetchErrorDemo(ctx context.Context, c *Console, client *PostClient, badPath string) {
	c.Log(">> fetch error demo start")
	defer c.Log("FINALLY: fetch error demo finished")

	var data any
	if err := client.GetJSON(ctx, badPath, &data); err != nil {
		var statusErr *domain.HTTPStatusError
		if errors.As(err, &statusErr) {
			c.Error("Expected error from bad URL:", err)
			return
		}
		c.Error("fetch error demo transport error:", err)
		return
	}
	c.Log("Data:", data)
}
