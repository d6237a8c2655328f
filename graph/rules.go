/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import (
	"sort"
	"strings"

	"github.com/krotik/graphlite/graph/data"
	"github.com/krotik/graphlite/graph/util"
)

/*
Rule models a graph rule. Rules trigger on the events defined in
graph.go and run synchronously, inline with the operation that fired
them - there is no asynchronous rule dispatch.
*/
type Rule interface {

	/*
		Name returns the name of the rule.
	*/
	Name() string

	/*
		Handles returns the events handled by this rule.
	*/
	Handles() []int

	/*
		Handle handles an event. data carries the event's payload, as
		documented on the Event constants in graph.go.
	*/
	Handle(g *Graph, event int, data ...interface{}) error
}

/*
rulesManager dispatches graph events to the rules registered for them.
*/
type rulesManager struct {
	g        *Graph
	rules    map[string]Rule
	eventMap map[int]map[string]Rule
}

func newRulesManager(g *Graph) *rulesManager {
	return &rulesManager{g, make(map[string]Rule), make(map[int]map[string]Rule)}
}

/*
SetRule registers a rule for every event it handles.
*/
func (rm *rulesManager) SetRule(rule Rule) {
	rm.rules[rule.Name()] = rule

	for _, event := range rule.Handles() {
		rules, ok := rm.eventMap[event]
		if !ok {
			rules = make(map[string]Rule)
			rm.eventMap[event] = rules
		}
		rules[rule.Name()] = rule
	}
}

/*
Rules returns the names of all registered rules, sorted.
*/
func (rm *rulesManager) Rules() []string {
	names := make([]string, 0, len(rm.rules))
	for name := range rm.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
fire runs every rule registered for event. Individual rule failures are
collected into the returned GraphError rather than aborting
the triggering operation - an invariant-breaking internal error in one
rule must not leave the others unrun. A rule returning ErrEventHandled
is not treated as a failure.
*/
func (rm *rulesManager) fire(event int, data ...interface{}) error {
	rules, ok := rm.eventMap[event]
	if !ok {
		return nil
	}

	var errs []string

	for _, rule := range rules {
		if err := rule.Handle(rm.g, event, data...); err != nil && err != ErrEventHandled {
			errs = append(errs, err.Error())
		}
	}

	if errs != nil {
		return &util.GraphError{Type: util.ErrRule, Detail: strings.Join(errs, "; ")}
	}

	return nil
}

// Built-in rule: cascading edge delete
// =====================================

/*
ruleDeleteNodeEdges removes every edge incident to a node that is being
deleted, implementing §4.2's cascade. It runs on
EventNodeDeleted, fired by Graph.DeleteNode before the node record is
removed, so the edge enumeration still sees a consistent adjacency
record.
*/
type ruleDeleteNodeEdges struct{}

func (r *ruleDeleteNodeEdges) Name() string {
	return "system.deletenodeedges"
}

func (r *ruleDeleteNodeEdges) Handles() []int {
	return []int{EventNodeDeleted}
}

func (r *ruleDeleteNodeEdges) Handle(g *Graph, event int, ed ...interface{}) error {
	node := ed[0].(data.Node)

	for _, edge := range g.store.GetEdgesForNode(node.Id()) {
		// Deletions of edges whose endpoint is already gone are tolerated -
		// another rule invocation or a concurrent delete may have raced it.
		g.store.DeleteEdge(edge.Id())
	}

	return nil
}

// Built-in rule: node/edge timestamp maintenance
// ================================================

/*
ruleUpdateNodeStats keeps the created/updated timestamp invariant of §3
(updated_at >= created_at) true for structural changes that do not
already go through Node.SetProperty/Edge.SetProperty, such as an edge
being added (which should bump both endpoints' UpdatedAt).
*/
type ruleUpdateNodeStats struct{}

func (r *ruleUpdateNodeStats) Name() string {
	return "system.updatenodestats"
}

func (r *ruleUpdateNodeStats) Handles() []int {
	return []int{EventEdgeCreated, EventEdgeDeleted}
}

func (r *ruleUpdateNodeStats) Handle(g *Graph, event int, ed ...interface{}) error {
	edge := ed[0].(data.Edge)

	touchEndpoint(g, edge.From())
	touchEndpoint(g, edge.To())

	return nil
}

func touchEndpoint(g *Graph, id data.NodeId) {
	if n, err := g.store.GetNode(id); err == nil {
		n.Touch()
	}
}
