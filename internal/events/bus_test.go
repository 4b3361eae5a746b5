package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBus_TopicRouting(t *testing.T) {
	b := NewBus(4)
	defer b.Close()

	keys, cancelKeys := b.Subscribe(TopicKeyChanged)
	defer cancelKeys()
	all, cancelAll := b.Subscribe(TopicKeyChanged, TopicExternalChange)
	defer cancelAll()

	b.Publish(KeyChanged("workout_plan"))
	b.Publish(ExternalChange())

	require.Equal(t, KeyChanged("workout_plan"), <-keys)
	require.Len(t, keys, 0)

	require.Equal(t, TopicKeyChanged, (<-all).Topic)
	require.Equal(t, TopicExternalChange, (<-all).Topic)
}

func TestBus_SlowSubscriberDrops(t *testing.T) {
	b := NewBus(1)
	defer b.Close()

	ch, cancel := b.Subscribe(TopicKeyChanged)
	defer cancel()

	b.Publish(KeyChanged("a"))
	b.Publish(KeyChanged("b"))
	b.Publish(KeyChanged("c"))

	require.Equal(t, "a", (<-ch).Key)
	require.Equal(t, int64(2), b.Dropped())
}

func TestBus_CancelAndClose(t *testing.T) {
	b := NewBus(0)

	ch, cancel := b.Subscribe(TopicKeyChanged)
	cancel()
	cancel()
	_, ok := <-ch
	require.False(t, ok, "cancelled channel must be closed")

	ch2, cancel2 := b.Subscribe(TopicKeyChanged)
	b.Close()
	b.Close()
	_, ok = <-ch2
	require.False(t, ok, "Close must close subscriber channels")
	cancel2()

	// publishing and subscribing after Close are harmless
	b.Publish(KeyChanged("x"))
	ch3, cancel3 := b.Subscribe(TopicKeyChanged)
	_, ok = <-ch3
	require.False(t, ok)
	cancel3()
}

func TestBus_ConcurrentPublishAndCancel(t *testing.T) {
	b := NewBus(2)
	defer b.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := b.Subscribe(TopicKeyChanged)
			for j := 0; j < 50; j++ {
				b.Publish(KeyChanged("k"))
				select {
				case <-ch:
				default:
				}
			}
			cancel()
		}()
	}
	wg.Wait()
}
