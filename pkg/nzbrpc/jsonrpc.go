package nzbrpc

import (
	"context"
	"fmt"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
)

// jsonrpcClient speaks strict JSON-RPC 2.0 over HTTP POST, for proxies
// that front NZBGet with a 2.0 endpoint. NZBGet's own /jsonrpc answers
// with a "version": "1.1" envelope, which this client rejects. Basic auth
// comes from the userinfo in the endpoint URL.
type jsonrpcClient struct {
	rpc *jrpc2.Client
}

func newJSONRPCClient(endpoint string) *jsonrpcClient {
	ch := jhttp.NewChannel(endpoint, nil)
	return &jsonrpcClient{rpc: jrpc2.NewClient(ch, nil)}
}

func (c *jsonrpcClient) ListGroups(ctx context.Context, offset int) ([]Group, error) {
	var records []map[string]interface{}
	if err := c.rpc.CallResult(ctx, "listgroups", []interface{}{offset}, &records); err != nil {
		return nil, jsonrpcError("listgroups", err)
	}
	return decodeGroups(records)
}

func (c *jsonrpcClient) SetGroupPriority(ctx context.Context, label string, id int64) error {
	var ok bool
	args := []interface{}{"GroupSetPriority", PriorityValue(label), []int64{id}}
	if err := c.rpc.CallResult(ctx, "editqueue", args, &ok); err != nil {
		return jsonrpcError("editqueue", err)
	}
	if !ok {
		return fmt.Errorf("%w: editqueue rejected priority %q for group %d", ErrRemoteCall, label, id)
	}
	return nil
}

func (c *jsonrpcClient) Close() error {
	return c.rpc.Close()
}

// jsonrpcError wraps a failed call in ErrRemoteCall. A reply without the
// 2.0 version marker means the endpoint is not a JSON-RPC 2.0 server.
func jsonrpcError(method string, err error) error {
	if jrpc2.ErrorCode(err) == jrpc2.InvalidRequest {
		return fmt.Errorf("%w: %s: %v: %w", ErrRemoteCall, method, err, ErrNotJSONRPC2)
	}
	return fmt.Errorf("%w: %s: %v", ErrRemoteCall, method, err)
}
