// Package box provides a client-side object model for a Box-style remote
// storage account: folders, files, comments, discussions, and file versions
// addressed by id and navigated by path.
//
// Entities are handles around a lazily populated attribute cache. Reading an
// attribute that is not cached triggers a single metadata fetch through the
// account's Transport; folder fetches aggregate every listing page, so a
// folder's children are always complete. Payload maps carrying a type
// discriminator materialize into live entities of the matching concrete
// type.
//
// # Usage
//
//	import (
//	    box "github.com/ionutliviu/box-go-sdk"
//	    "github.com/ionutliviu/box-go-sdk/client"
//	)
//
//	func ListDocs(ctx context.Context) error {
//	    acct := box.NewAccount(client.New(
//	        client.WithAccessToken(os.Getenv(client.EnvAccessToken)),
//	    ))
//
//	    docs, err := acct.Root().At(ctx, "docs/")
//	    if err != nil {
//	        return err
//	    }
//	    folder, ok := docs.(*box.Folder)
//	    if !ok {
//	        return fmt.Errorf("docs not found")
//	    }
//	    files, err := folder.Files(ctx)
//	    ...
//	}
//
// Creates and moves that collide with an existing name can retry once under
// a timestamp-disambiguated name:
//
//	folder, outcome, err := parent.CreateFolderWithUniqueName(ctx, "Reports")
//	// outcome == box.CreatedWithRename when "Reports" was taken and
//	// "Reports (2026-08-23 14-05 UTC)" was created instead
//
// # Authentication
//
// The Transport carries the credential. With the bundled client, pass
// client.WithAccessToken or set BOX_ACCESS_TOKEN; Account.Authorize swaps
// in a new token at runtime and reports whether it works:
//
//	if !acct.Authorize(ctx, token) {
//	    return fmt.Errorf("token rejected")
//	}
//
// # Limitations
//
// 1. Handles built by the account factories (Account.Folder, Account.File,
// Account.Item) know only their id until the first fetch, and they never
// learn a parent reference because item metadata responses do not include
// one. Path resolution with ".." from such a handle resolves to nil.
//
// 2. Attribute caches are not safe for concurrent mutation. Share an
// Account across goroutines only with external synchronization.
//
// 3. A fetch that fails still marks the cache as populated, so plain
// attribute reads do not refetch after a failure. Use Refresh to retry.
package box
