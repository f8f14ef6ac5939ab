// Package client implements box.Transport against the Box v2 REST API.
//
// # Usage
//
//	import (
//	    box "github.com/ionutliviu/box-go-sdk"
//	    "github.com/ionutliviu/box-go-sdk/client"
//	)
//
//	func DoSomething() error {
//	    c := client.New(
//	        client.WithAccessToken(os.Getenv(client.EnvAccessToken)),
//	    )
//	    acct := box.NewAccount(c)
//	    ...
//	}
//
// # Authentication
//
// Every call carries an OAuth2 bearer token. Set it via the WithAccessToken
// option or the BOX_ACCESS_TOKEN environment variable; Account.Authorize
// installs a replacement token at runtime through SetAuthToken.
//
// # Limitations
//
// 1. Single file versions have no metadata endpoint, so ItemInfo rejects
// version handles. Versions are read from payloads embedded in file
// metadata.
//
// 2. Uploads assemble the multipart body in memory. Callers uploading very
// large files should chunk them.
//
// 3. Item metadata responses do not include a parent reference, so handles
// built from a bare id never learn their parent.
package client
