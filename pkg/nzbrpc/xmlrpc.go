package nzbrpc

import (
	"context"
	"fmt"

	"github.com/kolo/xmlrpc"
)

type xmlrpcClient struct {
	rpc *xmlrpc.Client
}

func newXMLRPCClient(endpoint string) (*xmlrpcClient, error) {
	c, err := xmlrpc.NewClient(endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConnectionConfig, err.Error())
	}
	return &xmlrpcClient{rpc: c}, nil
}

// call runs method and waits for its reply or for ctx to end. The xmlrpc
// client cannot abort a request in flight, so on cancellation the call is
// abandoned: it completes in the background and its reply is discarded.
func (c *xmlrpcClient) call(ctx context.Context, method string, args []interface{}, reply interface{}) error {
	call := c.rpc.Go(method, args, reply, nil)
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrRemoteCall, method, ctx.Err())
	case <-call.Done:
	}
	if call.Error != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemoteCall, method, call.Error)
	}
	return nil
}

func (c *xmlrpcClient) ListGroups(ctx context.Context, offset int) ([]Group, error) {
	var records []map[string]interface{}
	if err := c.call(ctx, "listgroups", []interface{}{offset}, &records); err != nil {
		return nil, err
	}
	return decodeGroups(records)
}

func (c *xmlrpcClient) SetGroupPriority(ctx context.Context, label string, id int64) error {
	var ok bool
	args := []interface{}{"GroupSetPriority", PriorityValue(label), []int64{id}}
	if err := c.call(ctx, "editqueue", args, &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: editqueue rejected priority %q for group %d", ErrRemoteCall, label, id)
	}
	return nil
}

func (c *xmlrpcClient) Close() error {
	return c.rpc.Close()
}
