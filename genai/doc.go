// Package genai defines the knowledge/RAG reference policy: an organization
// → knowledge base / AI model → document / session → query hierarchy.
//
// Two rules distinguish this policy from the banking package:
//
//   - Confidential-default: a document whose explicit viewer and editor
//     lists are both empty delegates to the knowledge base's curation
//     permission instead of its view permission, so absence of an explicit
//     grant never implies openness.
//   - Result gating: accessing a query's results requires both viewing the
//     query and independently passing the RAG-usage check on every cited
//     document.
package genai
