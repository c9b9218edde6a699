// Package navigation projects the declarative console menu down to the
// subset visible for the current account. Gates are built exclusively from
// the access package; this package decides nothing about roles itself.
package navigation

import (
	"github.com/helloviza/frontend-hrms-sub002/internal/access"
)

// Gate decides visibility of a group, item or route for an account record.
type Gate func(access.Record) bool

// Item is one menu entry. A nil Gate means the item is shown whenever its
// group is shown; a non-nil Gate narrows the group gate for this item only.
type Item struct {
	Label  string `json:"label"`
	Target string `json:"target"`
	Gate   Gate   `json:"-"`
}

// Group is an ordered set of items behind a shared gate.
type Group struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Gate  Gate   `json:"-"`
	Items []Item `json:"items"`
}

// Project filters the menu tree for a record. A group whose gate evaluates
// false is dropped whole; surviving groups keep only items whose own gate
// (if any) also passes; groups left with zero items are dropped. Declaration
// order is preserved.
func Project(groups []Group, r access.Record) []Group {
	visible := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.Gate != nil && !g.Gate(r) {
			continue
		}
		items := make([]Item, 0, len(g.Items))
		for _, it := range g.Items {
			if it.Gate == nil || it.Gate(r) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		g.Items = items
		visible = append(visible, g)
	}
	return visible
}

// ItemConfig and GroupConfig describe a menu entry with its gate by name,
// the same form the stored configuration uses.
type ItemConfig struct {
	Label  string
	Target string
	Gate   string
}

type GroupConfig struct {
	Slug  string
	Label string
	Gate  string
	Items []ItemConfig
}

// defaultMenuConfig is the built-in console menu, used when no configuration
// is stored and as the seed for a fresh configuration store.
var defaultMenuConfig = []GroupConfig{
	{
		Slug:  "dashboard",
		Label: "Dashboard",
		Gate:  "authenticated",
		Items: []ItemConfig{
			{Label: "Overview", Target: "/dashboard"},
			{Label: "My Calendar", Target: "/dashboard/calendar"},
		},
	},
	{
		Slug:  "approvals",
		Label: "Approvals",
		Gate:  "isApprover",
		Items: []ItemConfig{
			{Label: "Pending Approvals", Target: "/approvals"},
			{Label: "Approval History", Target: "/approvals/history"},
		},
	},
	{
		Slug:  "workspace",
		Label: "Workspace",
		Gate:  "customer",
		Items: []ItemConfig{
			{Label: "My Requests", Target: "/workspace/requests"},
			{Label: "Team Overview", Target: "/workspace/team", Gate: "isWorkspaceLeader"},
		},
	},
	{
		Slug:  "people",
		Label: "People",
		Gate:  "canCreateUsers",
		Items: []ItemConfig{
			{Label: "Directory", Target: "/people"},
			{Label: "Invite User", Target: "/people/invite"},
		},
	},
	{
		Slug:  "admin",
		Label: "Administration",
		Gate:  "admin",
		Items: []ItemConfig{
			{Label: "Policies", Target: "/admin/policies", Gate: "canManagePolicies"},
			{Label: "Org Chart", Target: "/admin/org-chart", Gate: "canManageOrgChart"},
			{Label: "Holiday Calendar", Target: "/admin/holidays", Gate: "canManageHolidays"},
		},
	},
}

// Build resolves a named-gate configuration into a projectable menu tree.
func Build(configs []GroupConfig) []Group {
	groups := make([]Group, 0, len(configs))
	for _, gc := range configs {
		g := Group{ID: gc.Slug, Label: gc.Label, Gate: GateByName(gc.Gate)}
		for _, ic := range gc.Items {
			item := Item{Label: ic.Label, Target: ic.Target}
			if ic.Gate != "" {
				item.Gate = GateByName(ic.Gate)
			}
			g.Items = append(g.Items, item)
		}
		groups = append(groups, g)
	}
	return groups
}

// DefaultMenu returns the built-in console menu.
func DefaultMenu() []Group {
	return Build(defaultMenuConfig)
}
