// Package banking defines the banking reference policy: a bank → branch →
// account/loan containment hierarchy with branch-staff delegation.
//
// The policy is deliberately more permissive about hierarchy inheritance
// than the genai package — every branch staff member can view every account
// in the branch. The divergence is per-domain policy, expressed by each
// package registering its own independent rule set.
package banking
