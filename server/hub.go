package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"orthos/calculator"
	"orthos/config"
	"orthos/model"
)

// Hub 每个 websocket 连接对应一个 Hub，负责解析请求、计算并推送结果
type Hub struct {
	cfg  config.Config
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done     chan struct{}
	stopOnce sync.Once
}

func NewHub(cfg config.Config, conn *websocket.Conn) *Hub {
	return &Hub{
		cfg:   cfg,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Warn("推送失败: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			start := time.Now()
			reply := h.dispatch(msg)
			log.WithFields(log.Fields{
				"request": msg.Type,
				"reply":   reply.Type,
				"cost":    time.Since(start),
			}).Info("处理请求")
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

// dispatch 根据消息类型计算对应的场，错误以 error 消息返回给前端
func (h *Hub) dispatch(msg model.Msg) (reply model.Msg) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("type", msg.Type).Error("计算异常: ", r)
			reply = errorMsg(fmt.Errorf("internal error: %v", r))
		}
	}()

	var (
		content interface{}
		err     error
		typ     string
	)
	switch msg.Type {
	case model.MsgPlate:
		typ = model.MsgPlateResult
		content, err = h.plate(msg.Content)
	case model.MsgHole:
		typ = model.MsgHoleResult
		content, err = h.hole(msg.Content)
	case model.MsgPSC:
		typ = model.MsgPSCResult
		content, err = h.psc(msg.Content)
	case model.MsgMicro:
		typ = model.MsgMicroResult
		content, err = h.micro(msg.Content)
	case model.MsgFatigue:
		typ = model.MsgFatigueResult
		content, err = h.fatigue(msg.Content)
	default:
		err = fmt.Errorf("no such type: %q", msg.Type)
	}
	if err != nil {
		return errorMsg(err)
	}

	data, err := json.Marshal(content)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.MsgError, Content: err.Error()}
}

func decode(content string, v interface{}) error {
	if content == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func (h *Hub) plate(content string) (*model.PlateResult, error) {
	var req model.PlateRequest
	if err := decode(content, &req); err != nil {
		return nil, err
	}
	field, err := calculator.NewPlateCalculator(h.cfg.PlateParameters(req), h.cfg.CalculatorOptions()).Calculate()
	if err != nil {
		return nil, err
	}
	summary, err := calculator.SummarizePlate(field)
	if err != nil {
		return nil, err
	}
	return &model.PlateResult{Field: field, Summary: summary}, nil
}

func (h *Hub) hole(content string) (*model.GridField, error) {
	var req model.HoleRequest
	if err := decode(content, &req); err != nil {
		return nil, err
	}
	return calculator.NewHoleCalculator(h.cfg.HoleParameters(req), h.cfg.CalculatorOptions()).Calculate()
}

func (h *Hub) psc(content string) (*model.StrengthResult, error) {
	var req model.NotchedStrengthRequest
	if err := decode(content, &req); err != nil {
		return nil, err
	}
	s, err := calculator.NotchedStrength(h.cfg.NotchedStrengthParameters(req))
	if err != nil {
		return nil, err
	}
	return &model.StrengthResult{PredictedStrength: s}, nil
}

func (h *Hub) micro(content string) (*model.MicromechanicsResult, error) {
	// 缺省的 xi 在解码前填入，请求中给出时会被覆盖
	p := model.MicromechanicsParameters{Xi: calculator.DefaultHalpinTsaiXi}
	if err := decode(content, &p); err != nil {
		return nil, err
	}
	res, err := calculator.Micromechanics(p)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (h *Hub) fatigue(content string) (*model.FatigueResult, error) {
	var req model.FatigueRequest
	if err := decode(content, &req); err != nil {
		return nil, err
	}
	res, err := calculator.Fatigue(req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
