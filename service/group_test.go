package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type fakeService struct {
	name    string
	deps    []string
	log     *[]string
	initArg any
	failOn  string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	if len(args) > 0 {
		f.initArg = args[0]
	}
	*f.log = append(*f.log, "init:"+f.name)
	return nil
}

func (f *fakeService) Start() error {
	if f.failOn == "start" {
		return errors.New("boom")
	}
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestGroupDependencyOrder(t *testing.T) {
	var log []string
	g := NewGroup(zerolog.Nop())
	net := &fakeService{name: "network", deps: []string{"audio"}, log: &log}
	audio := &fakeService{name: "audio", log: &log}
	g.Add(net, "127.0.0.1:0")
	g.Add(audio)

	if err := g.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := g.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	want := []string{"init:audio", "init:network", "start:audio", "start:network", "stop:network", "stop:audio"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if net.initArg != "127.0.0.1:0" {
		t.Errorf("Expected init arg forwarded, got %v", net.initArg)
	}
}

func TestGroupUnknownDependency(t *testing.T) {
	var log []string
	g := NewGroup(zerolog.Nop())
	g.Add(&fakeService{name: "a", deps: []string{"missing"}, log: &log})
	if err := g.Start(); err == nil {
		t.Error("Expected unknown dependency error")
	}
}

func TestGroupCycle(t *testing.T) {
	var log []string
	g := NewGroup(zerolog.Nop())
	g.Add(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	g.Add(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := g.Start(); err == nil {
		t.Error("Expected cycle error")
	}
}

func TestGroupStartFailureStopsStarted(t *testing.T) {
	var log []string
	g := NewGroup(zerolog.Nop())
	g.Add(&fakeService{name: "a", log: &log})
	g.Add(&fakeService{name: "b", deps: []string{"a"}, log: &log, failOn: "start"})

	if err := g.Start(); err == nil {
		t.Fatal("Expected start failure")
	}
	if log[len(log)-1] != "stop:a" {
		t.Errorf("Expected a to be stopped after failure, got %v", log)
	}
}
