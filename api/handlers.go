package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/venuelabs/matching-venue/matching"
)

// submitOrderRequest is the JSON body of POST /api/v1/orders.
// Prices and quantities are decimal strings, e.g. "101.25".
type submitOrderRequest struct {
	Symbol    string `json:"symbol"`
	AccountID uint64 `json:"account_id"`
	Side      string `json:"side"`
	Type      string `json:"type"`
	Price     string `json:"price,omitempty"`
	Quantity  string `json:"quantity"`
}

type tradeView struct {
	ID           string `json:"id"`
	Symbol       string `json:"symbol"`
	MakerOrderID uint64 `json:"maker_order_id"`
	TakerOrderID uint64 `json:"taker_order_id"`
	Price        string `json:"price"`
	Quantity     string `json:"quantity"`
	TakerSide    string `json:"taker_side"`
	Timestamp    string `json:"timestamp"`
}

type submitOrderResponse struct {
	OrderID           uint64      `json:"order_id"`
	Seq               uint64      `json:"seq,omitempty"`
	Status            string      `json:"status"`
	ExecutedQuantity  string      `json:"executed_quantity"`
	RemainingQuantity string      `json:"remaining_quantity"`
	Trades            []tradeView `json:"trades,omitempty"`
	Reason            string      `json:"reason,omitempty"`
}

type bookResponse struct {
	Symbol         string `json:"symbol"`
	BidPrice       string `json:"bid_price,omitempty"`
	BidVolume      string `json:"bid_volume,omitempty"`
	AskPrice       string `json:"ask_price,omitempty"`
	AskVolume      string `json:"ask_volume,omitempty"`
	Spread         string `json:"spread,omitempty"`
	Mid            string `json:"mid,omitempty"`
	LastTradePrice string `json:"last_trade_price,omitempty"`
	Orders         int    `json:"orders"`
	Halted         bool   `json:"halted"`
}

type positionResponse struct {
	AccountID     uint64 `json:"account_id"`
	Symbol        string `json:"symbol"`
	Quantity      string `json:"quantity"`
	AvgEntryPrice string `json:"avg_entry_price"`
	RealizedPnL   string `json:"realized_pnl"`
	UnrealizedPnL string `json:"unrealized_pnl"`
	MarkPrice     string `json:"mark_price"`
}

// handleSubmitOrder handles POST /api/v1/orders.
func (s *Server) handleSubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	symbol, ok := s.symbols[req.Symbol]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown symbol "+req.Symbol)
		return
	}
	if req.AccountID == 0 {
		respondError(w, http.StatusBadRequest, "account_id is required")
		return
	}

	side, err := parseSide(req.Side)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	quantity, err := matching.NewUintFromFloatString(req.Quantity)
	if err != nil || quantity.IsZero() {
		respondError(w, http.StatusBadRequest, "quantity must be a positive decimal")
		return
	}

	var order matching.Order
	switch strings.ToLower(req.Type) {
	case "limit":
		price, err := matching.NewUintFromFloatString(req.Price)
		if err != nil || price.IsZero() {
			respondError(w, http.StatusBadRequest, "price must be a positive decimal for limit orders")
			return
		}
		order = matching.NewLimitOrder(symbol.ID(), s.orderIDs.Next(), req.AccountID, side, price, quantity)
	case "market":
		if req.Price != "" {
			respondError(w, http.StatusBadRequest, "market orders must not carry a price")
			return
		}
		order = matching.NewMarketOrder(symbol.ID(), s.orderIDs.Next(), req.AccountID, side, quantity)
	default:
		respondError(w, http.StatusBadRequest, "type must be limit or market")
		return
	}

	ack, err := s.engine.SubmitOrder(order)
	response := ackResponse(ack)
	if err != nil {
		response.Reason = err.Error()
		respondJSON(w, rejectionStatusCode(err), response)
		return
	}

	respondJSON(w, ackStatusCode(ack.Status), response)
}

// handleCancelOrder handles DELETE /api/v1/orders/{symbol}/{order_id}.
func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	symbol, ok := s.symbols[vars["symbol"]]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown symbol "+vars["symbol"])
		return
	}

	orderID, err := strconv.ParseUint(vars["order_id"], 10, 64)
	if err != nil || orderID == 0 {
		respondError(w, http.StatusBadRequest, "order_id must be a positive integer")
		return
	}

	if err := s.engine.CancelOrder(symbol.ID(), orderID); err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"order_id": orderID,
		"status":   matching.OrderStatusCancelled.String(),
	})
}

// handleGetBook handles GET /api/v1/book/{symbol}.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	symbol, ok := s.symbols[vars["symbol"]]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown symbol "+vars["symbol"])
		return
	}

	orderBook := s.engine.OrderBook(symbol.ID())
	if orderBook == nil {
		respondError(w, http.StatusNotFound, "no order book for "+symbol.Name())
		return
	}

	top := orderBook.TopOfBook()
	response := bookResponse{
		Symbol: top.Symbol,
		Orders: orderBook.Size(),
		Halted: orderBook.IsHalted(),
	}
	if top.HasBid {
		response.BidPrice = top.BidPrice.ToFloatString()
		response.BidVolume = top.BidVolume.ToFloatString()
	}
	if top.HasAsk {
		response.AskPrice = top.AskPrice.ToFloatString()
		response.AskVolume = top.AskVolume.ToFloatString()
	}
	if spread, ok := top.Spread(); ok {
		response.Spread = spread.ToFloatString()
	}
	if mid, ok := top.Mid(); ok {
		response.Mid = mid.ToFloatString()
	}
	if !top.LastTradePrice.IsZero() {
		response.LastTradePrice = top.LastTradePrice.ToFloatString()
	}

	respondJSON(w, http.StatusOK, response)
}

// handleGetPosition handles GET /api/v1/positions/{account_id}/{symbol}.
func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	accountID, err := strconv.ParseUint(vars["account_id"], 10, 64)
	if err != nil || accountID == 0 {
		respondError(w, http.StatusBadRequest, "account_id must be a positive integer")
		return
	}

	symbol, ok := s.symbols[vars["symbol"]]
	if !ok {
		respondError(w, http.StatusNotFound, "unknown symbol "+vars["symbol"])
		return
	}

	snapshot := s.risk.Snapshot(accountID, symbol.ID())
	respondJSON(w, http.StatusOK, positionResponse{
		AccountID:     snapshot.AccountID,
		Symbol:        symbol.Name(),
		Quantity:      snapshot.Quantity.ToFloatString(),
		AvgEntryPrice: snapshot.AvgEntryPrice.ToFloatString(),
		RealizedPnL:   snapshot.RealizedPnL.ToFloatString(),
		UnrealizedPnL: snapshot.UnrealizedPnL.ToFloatString(),
		MarkPrice:     snapshot.MarkPrice.ToFloatString(),
	})
}

// handleTradeStream handles GET /ws/trades.
func (s *Server) handleTradeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := s.tradeHub.Subscribe(32)
	defer s.tradeHub.Unsubscribe(sub)

	for trade := range sub.ch {
		if err := conn.WriteJSON(toTradeView(trade)); err != nil {
			return
		}
	}
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(s.startTime).Seconds()),
		"order_books":    s.engine.OrderBooks(),
		"resting_orders": s.engine.Orders(),
	})
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot := s.engine.Metrics().Snapshot()
	respondJSON(w, http.StatusOK, map[string]any{
		"orders_processed":        snapshot.OrdersProcessed,
		"orders_rejected":         snapshot.OrdersRejected,
		"trades_executed":         snapshot.TradesExecuted,
		"last_processing_time_ns": int64(snapshot.LastProcessingTime),
		"resting_orders":          s.engine.Orders(),
	})
}

////////////////////////////////////////////////////////////////
// Helpers
////////////////////////////////////////////////////////////////

func parseSide(value string) (matching.OrderSide, error) {
	switch strings.ToLower(value) {
	case "buy", "bid", "b":
		return matching.OrderSideBuy, nil
	case "sell", "ask", "s":
		return matching.OrderSideSell, nil
	default:
		return 0, errors.New("side must be buy or sell")
	}
}

func ackResponse(ack matching.Ack) submitOrderResponse {
	response := submitOrderResponse{
		OrderID:           ack.OrderID,
		Seq:               ack.Seq,
		Status:            ack.Status.String(),
		ExecutedQuantity:  ack.ExecutedQuantity.ToFloatString(),
		RemainingQuantity: ack.RemainingQuantity.ToFloatString(),
	}
	if ack.Reason != nil {
		response.Reason = ack.Reason.Error()
	}
	for _, trade := range ack.Trades {
		response.Trades = append(response.Trades, toTradeView(trade))
	}
	return response
}

func toTradeView(trade matching.ExecutionEvent) tradeView {
	return tradeView{
		ID:           trade.ID.String(),
		Symbol:       trade.Symbol,
		MakerOrderID: trade.MakerOrderID,
		TakerOrderID: trade.TakerOrderID,
		Price:        trade.Price.ToFloatString(),
		Quantity:     trade.Quantity.ToFloatString(),
		TakerSide:    trade.TakerSide.String(),
		Timestamp:    trade.Timestamp.Format(time.RFC3339Nano),
	}
}

func ackStatusCode(status matching.OrderStatus) int {
	switch status {
	case matching.OrderStatusResting:
		return http.StatusCreated
	case matching.OrderStatusPartiallyFilledResting, matching.OrderStatusPartiallyFilledUnfilled:
		return http.StatusAccepted
	case matching.OrderStatusFilled:
		return http.StatusOK
	default:
		return http.StatusUnprocessableEntity
	}
}

func rejectionStatusCode(err error) int {
	switch {
	case errors.Is(err, matching.ErrMarketHalted):
		return http.StatusServiceUnavailable
	case errors.Is(err, matching.ErrOrderDuplicate):
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}
