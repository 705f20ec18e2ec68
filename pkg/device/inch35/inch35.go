package inch35

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"image2cpp/pkg/bitmap"
	"image2cpp/pkg/proto"
)

const (
	Restart    = 101
	Shutdown   = 108
	Startup    = 109
	SetLight   = 110
	SetRotate  = 121
	SetMirror  = 122
	DrawPixels = 195
	DrawBitmap = 197
)

const (
	Width  = 320
	Height = 480
)

// Open connects to the screen on the serial port matching name.
func Open(name string, logger *zap.Logger) (proto.Control, error) {
	serial := proto.NewSerial(name)
	if err := serial.Open(&proto.Options{DTR: true, RTS: true, BaudRate: 115200}); err != nil {
		return nil, err
	}
	return New(serial, logger), nil
}

func New(port io.WriteCloser, logger *zap.Logger) *Inch35 {
	return &Inch35{
		port:   port,
		logger: logger.With(zap.String("device", "inch35")),
		width:  Width,
		height: Height,
	}
}

type Inch35 struct {
	port   io.WriteCloser
	logger *zap.Logger
	width  int
	height int
}

// Brightness maps a percentage onto the inverted 0-255 scale the panel
// expects for SetLight.
func Brightness(percent uint8) uint8 {
	if percent > 100 {
		percent = 100
	}
	return uint8((1 - float64(percent)/100) * 255)
}

func (i *Inch35) Startup() error {
	return i.sendCMD(Startup)
}

func (i *Inch35) Shutdown() error {
	return i.sendCMD(Shutdown)
}

func (i *Inch35) Close() error {
	return i.port.Close()
}

func (i *Inch35) SetLight(light uint8) error {
	return i.sendCMD(SetLight, int(light))
}

func (i *Inch35) SetRotate(landscape bool, invert bool) error {
	ov := 100
	if landscape {
		ov++
		i.width, i.height = Height, Width
	} else {
		i.width, i.height = Width, Height
	}
	if invert {
		ov++
	}

	var bs bytes.Buffer
	bs.WriteByte(uint8(ov))
	_ = binary.Write(&bs, binary.BigEndian, uint16(i.width))
	_ = binary.Write(&bs, binary.BigEndian, uint16(i.height))

	return i.sendOpt(SetRotate, 16, bs.Bytes())
}

func (i *Inch35) Size() image.Point {
	return image.Pt(i.width, i.height)
}

func (i *Inch35) DrawBitmap(posX uint16, posY uint16, bmp *bitmap.RGB565) error {
	size := bmp.Bounds().Size()

	if size.X+int(posX) > i.width {
		return errors.New("width overflow")
	} else if size.Y+int(posY) > i.height {
		return errors.New("height overflow")
	}

	if err := i.sendCMD(DrawBitmap, int(posX), int(posY), int(posX)+size.X-1, int(posY)+size.Y-1); err != nil {
		return err
	}

	return i.sendBytes(bmp.Bytes(binary.LittleEndian))
}
