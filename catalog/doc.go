// Package catalog exposes the S4 service catalog: the set of annotation
// services the platform offers, each described by a ServiceDescriptor.
//
//	cat := catalog.New(c)
//	services, err := cat.List(ctx)
//	ner, err := cat.Find(ctx, "news")
package catalog
