package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "kirimuang.v1.RemittanceService"

// RemittanceServiceServer is the server API for RemittanceService
type RemittanceServiceServer interface {
	StartTransfer(context.Context, *StartTransferRequest) (*TransferState, error)
	SetTransferField(context.Context, *SetTransferFieldRequest) (*TransferState, error)
	NextStep(context.Context, *SessionRequest) (*TransferState, error)
	PreviousStep(context.Context, *SessionRequest) (*TransferState, error)
	SubmitTransfer(context.Context, *SessionRequest) (*TransferState, error)
	GetTransfer(context.Context, *SessionRequest) (*TransferState, error)
	EndTransfer(context.Context, *SessionRequest) (*Empty, error)

	GetExchangeRate(context.Context, *Empty) (*ExchangeRate, error)
	RefreshExchangeRate(context.Context, *RefreshExchangeRateRequest) (*ExchangeRate, error)

	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error)
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)

	ListNotifications(context.Context, *Empty) (*ListNotificationsResponse, error)
	DismissNotification(context.Context, *NotificationRequest) (*Empty, error)
	InvokeNotificationAction(context.Context, *NotificationRequest) (*Empty, error)

	GetPreferences(context.Context, *Empty) (*Preferences, error)
	UpdatePreferences(context.Context, *UpdatePreferencesRequest) (*Preferences, error)
	GetProfile(context.Context, *Empty) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unaryHandler adapts a typed server method to grpc.MethodHandler
func unaryHandler[Req, Resp any](method string, call func(RemittanceServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RemittanceServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(RemittanceServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RemittanceServiceDesc describes RemittanceService for grpc.Server.RegisterService
var RemittanceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RemittanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartTransfer", Handler: unaryHandler("StartTransfer", RemittanceServiceServer.StartTransfer)},
		{MethodName: "SetTransferField", Handler: unaryHandler("SetTransferField", RemittanceServiceServer.SetTransferField)},
		{MethodName: "NextStep", Handler: unaryHandler("NextStep", RemittanceServiceServer.NextStep)},
		{MethodName: "PreviousStep", Handler: unaryHandler("PreviousStep", RemittanceServiceServer.PreviousStep)},
		{MethodName: "SubmitTransfer", Handler: unaryHandler("SubmitTransfer", RemittanceServiceServer.SubmitTransfer)},
		{MethodName: "GetTransfer", Handler: unaryHandler("GetTransfer", RemittanceServiceServer.GetTransfer)},
		{MethodName: "EndTransfer", Handler: unaryHandler("EndTransfer", RemittanceServiceServer.EndTransfer)},
		{MethodName: "GetExchangeRate", Handler: unaryHandler("GetExchangeRate", RemittanceServiceServer.GetExchangeRate)},
		{MethodName: "RefreshExchangeRate", Handler: unaryHandler("RefreshExchangeRate", RemittanceServiceServer.RefreshExchangeRate)},
		{MethodName: "ListTransactions", Handler: unaryHandler("ListTransactions", RemittanceServiceServer.ListTransactions)},
		{MethodName: "GetReceipt", Handler: unaryHandler("GetReceipt", RemittanceServiceServer.GetReceipt)},
		{MethodName: "GetDashboard", Handler: unaryHandler("GetDashboard", RemittanceServiceServer.GetDashboard)},
		{MethodName: "ListNotifications", Handler: unaryHandler("ListNotifications", RemittanceServiceServer.ListNotifications)},
		{MethodName: "DismissNotification", Handler: unaryHandler("DismissNotification", RemittanceServiceServer.DismissNotification)},
		{MethodName: "InvokeNotificationAction", Handler: unaryHandler("InvokeNotificationAction", RemittanceServiceServer.InvokeNotificationAction)},
		{MethodName: "GetPreferences", Handler: unaryHandler("GetPreferences", RemittanceServiceServer.GetPreferences)},
		{MethodName: "UpdatePreferences", Handler: unaryHandler("UpdatePreferences", RemittanceServiceServer.UpdatePreferences)},
		{MethodName: "GetProfile", Handler: unaryHandler("GetProfile", RemittanceServiceServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unaryHandler("UpdateProfile", RemittanceServiceServer.UpdateProfile)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "kirimuang/v1/remittance",
}

// RegisterRemittanceServiceServer registers srv on s
func RegisterRemittanceServiceServer(s grpc.ServiceRegistrar, srv RemittanceServiceServer) {
	s.RegisterService(&RemittanceServiceDesc, srv)
}

// Client is the client API for RemittanceService. Every call uses the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StartTransfer(ctx context.Context, in *StartTransferRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "StartTransfer", in, opts)
}

func (c *Client) SetTransferField(ctx context.Context, in *SetTransferFieldRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "SetTransferField", in, opts)
}

func (c *Client) NextStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "NextStep", in, opts)
}

func (c *Client) PreviousStep(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "PreviousStep", in, opts)
}

func (c *Client) SubmitTransfer(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "SubmitTransfer", in, opts)
}

func (c *Client) GetTransfer(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*TransferState, error) {
	return invoke[TransferState](ctx, c.cc, "GetTransfer", in, opts)
}

func (c *Client) EndTransfer(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "EndTransfer", in, opts)
}

func (c *Client) GetExchangeRate(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExchangeRate, error) {
	return invoke[ExchangeRate](ctx, c.cc, "GetExchangeRate", in, opts)
}

func (c *Client) RefreshExchangeRate(ctx context.Context, in *RefreshExchangeRateRequest, opts ...grpc.CallOption) (*ExchangeRate, error) {
	return invoke[ExchangeRate](ctx, c.cc, "RefreshExchangeRate", in, opts)
}

func (c *Client) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	return invoke[ListTransactionsResponse](ctx, c.cc, "ListTransactions", in, opts)
}

func (c *Client) GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error) {
	return invoke[GetReceiptResponse](ctx, c.cc, "GetReceipt", in, opts)
}

func (c *Client) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error) {
	return invoke[GetDashboardResponse](ctx, c.cc, "GetDashboard", in, opts)
}

func (c *Client) ListNotifications(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, "ListNotifications", in, opts)
}

func (c *Client) DismissNotification(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "DismissNotification", in, opts)
}

func (c *Client) InvokeNotificationAction(ctx context.Context, in *NotificationRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, "InvokeNotificationAction", in, opts)
}

func (c *Client) GetPreferences(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Preferences, error) {
	return invoke[Preferences](ctx, c.cc, "GetPreferences", in, opts)
}

func (c *Client) UpdatePreferences(ctx context.Context, in *UpdatePreferencesRequest, opts ...grpc.CallOption) (*Preferences, error) {
	return invoke[Preferences](ctx, c.cc, "UpdatePreferences", in, opts)
}

func (c *Client) GetProfile(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, "GetProfile", in, opts)
}

func (c *Client) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, "UpdateProfile", in, opts)
}
